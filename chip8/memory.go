package chip8

// Memory layout constants. Font tables are written at the start of every
// Reset; program space begins at ProgramStart and runs to the end of the
// 4096-byte address space.
const (
	MemorySize   = 4096
	ProgramStart = 0x200
	MaxROMSize   = MemorySize - ProgramStart

	LoFontAddr = 0x000
	HiFontAddr = 0x050

	LoResWidth  = 64
	LoResHeight = 32
	HiResWidth  = 128
	HiResHeight = 64

	NumKeys   = 16
	StackSize = 16
	NumRPL    = 8
)

// loResFont is the classic 4x5 hex digit font (glyphs 0-F), 5 bytes each,
// reproduced verbatim from the source table.
var loResFont = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// hiResFont is the 10-byte-per-glyph Super-CHIP digit font (0-9 only),
// derived from loResFont by doubling each of its five rows: row r becomes
// rows 2r and 2r+1. This keeps the glyphs recognizable at the doubled
// vertical resolution FX30 callers expect without inventing a second,
// unrelated bit format (see DESIGN.md's Open Question ledger).
var hiResFont = buildHiResFont()

func buildHiResFont() [100]byte {
	var out [100]byte
	for glyph := 0; glyph < 10; glyph++ {
		for row := 0; row < 5; row++ {
			b := loResFont[glyph*5+row]
			out[glyph*10+row*2] = b
			out[glyph*10+row*2+1] = b
		}
	}
	return out
}

// Load resets the CPU and installs rom at ProgramStart. It fails, leaving
// the CPU state untouched, if rom is larger than the available program
// space.
func (c *CPU) Load(rom []byte) error {
	if len(rom) > MaxROMSize {
		return ErrOversizedROM
	}
	c.Reset()
	copy(c.Memory[ProgramStart:], rom)
	return nil
}

func (c *CPU) writeFonts() {
	copy(c.Memory[LoFontAddr:], loResFont[:])
	copy(c.Memory[HiFontAddr:], hiResFont[:])
}
