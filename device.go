package main

import (
	"fmt"

	"github.com/bendahl/uinput"
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/goGPiKeys/keymaps"
	"github.com/goGPiKeys/remap"
)

// highest key code uinput.CreateKeyboard enables
const maxKeyboardKey = 248

func connectGamepad(path string, grab bool) (*evdev.InputDevice, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gamepad %s: %w", path, err)
	}
	if grab {
		if err := dev.Grab(); err != nil {
			dev.File.Close()
			return nil, fmt.Errorf("failed to grab gamepad %s: %w", path, err)
		}
	}
	logger.Printf("Connected gamepad %q at %s (grab=%v)", dev.Name, path, grab)
	return dev, nil
}

type grabber interface {
	Release() error
}

// releaseGamepad undoes the grab taken by connectGamepad
func releaseGamepad(dev grabber, grabbed bool) {
	if !grabbed {
		return
	}
	if err := dev.Release(); err != nil {
		logger.Printf("Failed to release gamepad: %v", err)
	}
}

// checkOutputKeys makes sure the virtual keyboard can emit every key in km
func checkOutputKeys(km keymaps.KeyMapping) error {
	for _, k := range km.OutputKeys() {
		if k == 0 || k > maxKeyboardKey {
			return fmt.Errorf("key %d cannot be emitted by the virtual keyboard", k)
		}
	}
	return nil
}

func createVirtualKeyboard(path, name string, km keymaps.KeyMapping) (uinput.Keyboard, error) {
	if err := checkOutputKeys(km); err != nil {
		return nil, err
	}
	keyboard, err := uinput.CreateKeyboard(path, []byte(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual keyboard: %w", err)
	}
	logger.Printf("Created virtual keyboard %q with %d mapped keys", name, len(km.OutputKeys()))
	return keyboard, nil
}

type keyWriter interface {
	KeyDown(key int) error
	KeyUp(key int) error
}

// keyboardSink writes remapped events to the virtual keyboard.
// KeyDown and KeyUp each follow the key event with a SYN_REPORT.
// Autorepeat (value 2) is dropped, the virtual keyboard repeats on its own.
type keyboardSink struct {
	kb keyWriter
}

func (s *keyboardSink) Emit(ev remap.OutputKeyEvent) error {
	dprint("Key: code=%d value=%d\n", ev.Code, ev.Value)
	switch ev.Value {
	case 1:
		return s.kb.KeyDown(int(ev.Code))
	case 0:
		return s.kb.KeyUp(int(ev.Code))
	default:
		dprint("Ignored key value %d for key %d\n", ev.Value, ev.Code)
		return nil
	}
}
