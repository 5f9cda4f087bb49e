package chip8

import "errors"

// ErrOversizedROM is returned by Load when the supplied ROM does not fit
// in the space between ProgramStart and the end of memory.
var ErrOversizedROM = errors.New("chip8: rom exceeds available memory")
