package chip8

import "testing"

func TestDisassembleCoreMnemonics(t *testing.T) {
	cases := []struct {
		op   uint16
		want string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1234, "JP 0x234"},
		{0x2345, "CALL 0x345"},
		{0x3042, "SE V0, 0x42"},
		{0x4042, "SNE V0, 0x42"},
		{0x6042, "LD V0, 0x42"},
		{0x7005, "ADD V0, 0x05"},
		{0x8010, "LD V0, V1"},
		{0x8014, "ADD V0, V1"},
		{0xA123, "LD I, 0x123"},
		{0xC0FF, "RND V0, 0xFF"},
		{0xD015, "DRW V0, V1, 5"},
	}
	for _, c := range cases {
		got := Disassemble(c.op)
		if got != c.want {
			t.Errorf("Disassemble(%#04x) = %q, want %q", c.op, got, c.want)
		}
	}
}

func TestDisassembleSuperChipMnemonics(t *testing.T) {
	cases := []struct {
		op   uint16
		want string
	}{
		{0x00C5, "SCD 5"},
		{0x00FB, "SCR"},
		{0x00FC, "SCL"},
		{0x00FD, "EXIT"},
		{0x00FE, "LORES"},
		{0x00FF, "HIRES"},
		{0xF030, "LD HF, V0"},
		{0xF075, "LD R, V0"},
		{0xF085, "LD V0, R"},
	}
	for _, c := range cases {
		got := Disassemble(c.op)
		if got != c.want {
			t.Errorf("Disassemble(%#04x) = %q, want %q", c.op, got, c.want)
		}
	}
}

func TestDisassembleAtTruncatedTail(t *testing.T) {
	cpu := New()
	addr := uint16(len(cpu.Memory) - 1)
	if got := cpu.DisassembleAt(addr); got != "<truncated>" {
		t.Errorf("expected a placeholder for the last byte, got %q", got)
	}
}

func TestDisassembleAtReadsMemory(t *testing.T) {
	cpu := New()
	cpu.Memory[ProgramStart] = 0x60
	cpu.Memory[ProgramStart+1] = 0x0A

	if got := cpu.DisassembleAt(ProgramStart); got != "LD V0, 0x0A" {
		t.Errorf("got %q", got)
	}
}
