package remap

import (
	"math"
	"testing"

	evdev "github.com/gvalkov/golang-evdev"
)

func TestUpdateDPadMode(t *testing.T) {
	tests := []struct {
		name  string
		axis  uint16
		value int32
		from  DPadMode
		want  DPadMode
	}{
		{"x release", evdev.ABS_HAT0X, 0, DPadLeft, DPadDefault},
		{"x right", evdev.ABS_HAT0X, 1, DPadLeft, DPadDefault},
		{"x left", evdev.ABS_HAT0X, -1, DPadLeft, DPadDefault},
		{"y release", evdev.ABS_HAT0Y, 0, DPadLeft, DPadDefault},
		{"y down", evdev.ABS_HAT0Y, 1, DPadLeft, DPadDefault},
		{"x full right", evdev.ABS_HAT0X, 32767, DPadDefault, DPadLeft},
		{"x full left", evdev.ABS_HAT0X, -32768, DPadDefault, DPadLeft},
		{"y full down", evdev.ABS_HAT0Y, 32767, DPadDefault, DPadLeft},
		{"y full up", evdev.ABS_HAT0Y, -32768, DPadDefault, DPadLeft},
		{"y magnitude 2", evdev.ABS_HAT0Y, 2, DPadDefault, DPadLeft},
		{"y -1 keeps default", evdev.ABS_HAT0Y, -1, DPadDefault, DPadDefault},
		{"y -1 keeps left", evdev.ABS_HAT0Y, -1, DPadLeft, DPadLeft},
	}
	for _, tt := range tests {
		mode := tt.from
		UpdateDPadMode(tt.axis, tt.value, &mode)
		if mode != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, mode, tt.want)
		}
	}
}

func TestModeInference(t *testing.T) {
	mode := DPadDefault
	UpdateDPadMode(evdev.ABS_HAT0X, 32767, &mode)
	if mode != DPadLeft {
		t.Fatalf("after x=32767 got %v, want left", mode)
	}
	UpdateDPadMode(evdev.ABS_HAT0X, 0, &mode)
	if mode != DPadDefault {
		t.Fatalf("after x=0 got %v, want default", mode)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		axis  uint16
		value int32
		mode  DPadMode
		want  int32
	}{
		{"default x right", evdev.ABS_HAT0X, 1, DPadDefault, 1},
		{"default x left", evdev.ABS_HAT0X, -1, DPadDefault, -1},
		{"default x release", evdev.ABS_HAT0X, 0, DPadDefault, 0},
		{"default y up", evdev.ABS_HAT0Y, -1, DPadDefault, -1},
		{"default y release", evdev.ABS_HAT0Y, 0, DPadDefault, 0},
		{"default clamps", evdev.ABS_HAT0X, 5, DPadDefault, 1},
		{"left x right", evdev.ABS_HAT0X, 32767, DPadLeft, 1},
		{"left x left", evdev.ABS_HAT0X, -32768, DPadLeft, -1},
		{"left x release", evdev.ABS_HAT0X, 0, DPadLeft, 0},
		{"left y up", evdev.ABS_HAT0Y, -32768, DPadLeft, -1},
		{"left y down", evdev.ABS_HAT0Y, 32767, DPadLeft, 1},
		{"left y release", evdev.ABS_HAT0Y, -1, DPadLeft, 0},
		// shifted by one before clamping, so 0 is not a release here
		{"left y zero", evdev.ABS_HAT0Y, 0, DPadLeft, 1},
		{"left y max int", evdev.ABS_HAT0Y, math.MaxInt32, DPadLeft, 1},
		{"left y min int", evdev.ABS_HAT0Y, math.MinInt32, DPadLeft, -1},
		{"left x max int", evdev.ABS_HAT0X, math.MaxInt32, DPadLeft, 1},
		{"default y min int", evdev.ABS_HAT0Y, math.MinInt32, DPadDefault, -1},
	}
	for _, tt := range tests {
		if got := Normalize(tt.axis, tt.value, tt.mode); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDPadModeString(t *testing.T) {
	if DPadDefault.String() != "default" || DPadLeft.String() != "left" {
		t.Errorf("got %q and %q", DPadDefault, DPadLeft)
	}
	if DPadMode(7).String() != "unknown" {
		t.Errorf("got %q for out of range mode", DPadMode(7))
	}
}
