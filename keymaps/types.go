package keymaps

import "sort"

// RemapTable maps a physical button code to the keyboard key it produces
type RemapTable map[uint16]uint16

// DPadKeys holds the keys the four d-pad directions are translated to
type DPadKeys struct {
	LeftKey  uint16
	RightKey uint16
	UpKey    uint16
	DownKey  uint16
}

// KeyMapping defines the full gamepad to keyboard mapping
type KeyMapping struct {
	Buttons RemapTable
	DPad    DPadKeys
}

// Lookup returns the key mapped to a physical button
func (km KeyMapping) Lookup(button uint16) (uint16, bool) {
	key, ok := km.Buttons[button]
	return key, ok
}

// OutputKeys returns every key the mapping can emit, sorted and without duplicates.
// The virtual keyboard must have all of them enabled.
func (km KeyMapping) OutputKeys() []uint16 {
	seen := map[uint16]bool{}
	var keys []uint16
	add := func(k uint16) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	for _, k := range km.Buttons {
		add(k)
	}
	add(km.DPad.LeftKey)
	add(km.DPad.RightKey)
	add(km.DPad.UpKey)
	add(km.DPad.DownKey)

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
