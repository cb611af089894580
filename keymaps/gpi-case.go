package keymaps

import evdev "github.com/gvalkov/golang-evdev"

// GetGPiKeyMapping returns key mappings for the GPi case gamepad
func GetGPiKeyMapping() KeyMapping {
	type buttonAddresses struct {
		SouthButton uint16
		EastButton  uint16
		WestButton  uint16
		NorthButton uint16

		StartButton  uint16
		SelectButton uint16

		LeftShoulder  uint16
		RightShoulder uint16
	}
	// BTN_A..BTN_Y share their codes with BTN_SOUTH..BTN_WEST
	ba := buttonAddresses{
		SouthButton: evdev.BTN_A,
		EastButton:  evdev.BTN_B,
		WestButton:  evdev.BTN_Y,
		NorthButton: evdev.BTN_X,

		StartButton:  evdev.BTN_START,
		SelectButton: evdev.BTN_SELECT,

		LeftShoulder:  evdev.BTN_TL,
		RightShoulder: evdev.BTN_TR,
	}
	return KeyMapping{
		Buttons: RemapTable{
			// A, B, Y, X
			ba.SouthButton: evdev.KEY_A,
			ba.EastButton:  evdev.KEY_B,
			ba.WestButton:  evdev.KEY_Y,
			ba.NorthButton: evdev.KEY_X,

			ba.StartButton:  evdev.KEY_ENTER,
			ba.SelectButton: evdev.KEY_BACKSPACE,

			ba.LeftShoulder:  evdev.KEY_L,
			ba.RightShoulder: evdev.KEY_R,
		},
		DPad: DPadKeys{
			LeftKey:  evdev.KEY_LEFT,
			RightKey: evdev.KEY_RIGHT,
			UpKey:    evdev.KEY_UP,
			DownKey:  evdev.KEY_DOWN,
		},
	}
}
