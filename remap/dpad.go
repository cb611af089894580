package remap

import evdev "github.com/gvalkov/golang-evdev"

/*
The GPi case d-pad has two signalling modes. Holding start+up for 5 seconds
selects the default mode, holding start+left for 5 seconds selects the left
mode (older cases use select instead of start). The case never reports which
mode is active.

Default mode:

	ABS_HAT0X  1      right held
	ABS_HAT0X -1      left held
	ABS_HAT0X  0      left and right released
	ABS_HAT0Y  1      down held
	ABS_HAT0Y -1      up held
	ABS_HAT0Y  0      up and down released

Left mode:

	ABS_HAT0X  32767  right held
	ABS_HAT0X -32768  left held
	ABS_HAT0X  0      left and right released
	ABS_HAT0Y  32767  down held
	ABS_HAT0Y -32768  up held
	ABS_HAT0Y -1      up and down released

ABS_HAT0Y -1 means "up held" in one mode and "released" in the other, so the
mode is tracked from the values that are only produced by one of them.
*/

// DPadMode is the d-pad signalling mode the case is believed to be in
type DPadMode int

const (
	DPadDefault DPadMode = iota
	DPadLeft
)

func (m DPadMode) String() string {
	switch m {
	case DPadDefault:
		return "default"
	case DPadLeft:
		return "left"
	}
	return "unknown"
}

// UpdateDPadMode changes mode when it can be deduced from the axis and value.
// Ambiguous values leave the previous mode in place.
func UpdateDPadMode(axis uint16, value int32, mode *DPadMode) {
	switch {
	case axis == evdev.ABS_HAT0X && value >= -1 && value <= 1,
		axis == evdev.ABS_HAT0Y && (value == 0 || value == 1):
		*mode = DPadDefault
	case value > 1 || value < -1:
		*mode = DPadLeft
	}
}

// Normalize maps a raw d-pad value to -1, 0 or 1 for the given mode.
// In left mode the vertical axis is shifted by one first, since its release
// value is -1. A vertical 0 therefore normalizes to 1 in left mode.
func Normalize(axis uint16, value int32, mode DPadMode) int32 {
	v := int64(value)
	if mode == DPadLeft && axis == evdev.ABS_HAT0Y {
		v++
	}
	return int32(clamp(v, -1, 1))
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
