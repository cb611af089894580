package remap

import (
	"fmt"
	"syscall"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/goGPiKeys/keymaps"
)

// OutputKeyEvent is a synthesized key press (Value 1) or release (Value 0)
type OutputKeyEvent struct {
	Time  syscall.Timeval
	Code  uint16
	Value int32
}

// KeySink receives output key events in the order they are produced
type KeySink interface {
	Emit(ev OutputKeyEvent) error
}

// Remapper translates gamepad events into keyboard events.
// It is not safe for concurrent use; events must be fed one at a time.
type Remapper struct {
	keys keymaps.KeyMapping
	mode DPadMode
	sink KeySink
}

func NewRemapper(km keymaps.KeyMapping, sink KeySink) *Remapper {
	return &Remapper{
		keys: km,
		mode: DPadDefault,
		sink: sink,
	}
}

// Mode returns the current d-pad mode
func (r *Remapper) Mode() DPadMode {
	return r.mode
}

// Remap processes a single input event
func (r *Remapper) Remap(ev *evdev.InputEvent) error {
	return RemapEvent(ev, r.keys, &r.mode, r.sink)
}

// RemapEvent translates ev using km and the d-pad mode in mode, sending every
// resulting key event to sink. Events with no mapping produce nothing.
// The first sink error stops further output for ev and is returned.
func RemapEvent(ev *evdev.InputEvent, km keymaps.KeyMapping, mode *DPadMode, sink KeySink) error {
	switch ev.Type {
	case evdev.EV_KEY:
		// ABYX, shoulder buttons, start and select
		key, ok := km.Lookup(ev.Code)
		if !ok {
			return nil
		}
		return emit(sink, ev.Time, key, ev.Value)

	case evdev.EV_ABS:
		if ev.Code != evdev.ABS_HAT0X && ev.Code != evdev.ABS_HAT0Y {
			return nil
		}
		UpdateDPadMode(ev.Code, ev.Value, mode)
		value := Normalize(ev.Code, ev.Value, *mode)
		return remapDPad(ev.Time, ev.Code, value, km.DPad, sink)
	}
	return nil
}

func remapDPad(t syscall.Timeval, axis uint16, value int32, keys keymaps.DPadKeys, sink KeySink) error {
	switch {
	case axis == evdev.ABS_HAT0X && value == 1:
		return emit(sink, t, keys.RightKey, 1)
	case axis == evdev.ABS_HAT0X && value == -1:
		return emit(sink, t, keys.LeftKey, 1)
	case axis == evdev.ABS_HAT0X && value == 0:
		if err := emit(sink, t, keys.RightKey, 0); err != nil {
			return err
		}
		return emit(sink, t, keys.LeftKey, 0)
	case axis == evdev.ABS_HAT0Y && value == 1:
		return emit(sink, t, keys.DownKey, 1)
	case axis == evdev.ABS_HAT0Y && value == -1:
		return emit(sink, t, keys.UpKey, 1)
	case axis == evdev.ABS_HAT0Y && value == 0:
		if err := emit(sink, t, keys.DownKey, 0); err != nil {
			return err
		}
		return emit(sink, t, keys.UpKey, 0)
	default:
		// should be unreachable after Normalize, but keep translating
		return nil
	}
}

func emit(sink KeySink, t syscall.Timeval, code uint16, value int32) error {
	if err := sink.Emit(OutputKeyEvent{Time: t, Code: code, Value: value}); err != nil {
		return fmt.Errorf("emit key %d value %d: %w", code, value, err)
	}
	return nil
}
