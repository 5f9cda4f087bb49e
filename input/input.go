// Package input handles keyboard input mapping for the CHIP-8/Super-CHIP
// emulator.
package input

import "github.com/veandco/go-sdl2/sdl"

/*
CHIP-8 Keypad Layout:    Keyboard Mapping:
+---+---+---+---+        +---+---+---+---+
| 1 | 2 | 3 | C |        | 1 | 2 | 3 | 4 |
+---+---+---+---+        +---+---+---+---+
| 4 | 5 | 6 | D |   =>   | Q | W | E | R |
+---+---+---+---+        +---+---+---+---+
| 7 | 8 | 9 | E |        | A | S | D | F |
+---+---+---+---+        +---+---+---+---+
| A | 0 | B | F |        | Z | X | C | V |
+---+---+---+---+        +---+---+---+---+
*/

// KeyMap maps SDL keycodes to CHIP-8 key indices (0x0-0xF)
var KeyMap = map[sdl.Keycode]uint8{
	sdl.K_1: 0x1, sdl.K_2: 0x2, sdl.K_3: 0x3, sdl.K_4: 0xC,
	sdl.K_q: 0x4, sdl.K_w: 0x5, sdl.K_e: 0x6, sdl.K_r: 0xD,
	sdl.K_a: 0x7, sdl.K_s: 0x8, sdl.K_d: 0x9, sdl.K_f: 0xE,
	sdl.K_z: 0xA, sdl.K_x: 0x0, sdl.K_c: 0xB, sdl.K_v: 0xF,
}

// CPU is the subset of chip8.CPU that the keyboard drives. It lets this
// package stay free of an import cycle on chip8 while still pushing key
// events straight into the interpreter instead of buffering them itself.
type CPU interface {
	KeyDown(k uint8)
	KeyUp(k uint8)
}

// Keyboard translates SDL key events into CHIP-8 key presses on a CPU.
type Keyboard struct {
	cpu CPU
}

// New creates a Keyboard that drives the given CPU.
func New(cpu CPU) *Keyboard {
	return &Keyboard{cpu: cpu}
}

// HandleKeyDown processes a key down event, forwarding it to the CPU.
func (k *Keyboard) HandleKeyDown(keycode sdl.Keycode) (uint8, bool) {
	if chip8Key, ok := KeyMap[keycode]; ok {
		k.cpu.KeyDown(chip8Key)
		return chip8Key, true
	}
	return 0, false
}

// HandleKeyUp processes a key up event, forwarding it to the CPU.
func (k *Keyboard) HandleKeyUp(keycode sdl.Keycode) (uint8, bool) {
	if chip8Key, ok := KeyMap[keycode]; ok {
		k.cpu.KeyUp(chip8Key)
		return chip8Key, true
	}
	return 0, false
}

// Reset releases every key, in case the host remaps or reloads a ROM
// mid-session without a matching stream of key-up events.
func (k *Keyboard) Reset() {
	for _, v := range KeyMap {
		k.cpu.KeyUp(v)
	}
}
