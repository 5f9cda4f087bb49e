package chip8

import "testing"

func TestNew(t *testing.T) {
	c := New()

	if c.PC != ProgramStart {
		t.Errorf("PC should be %#x, got %#x", ProgramStart, c.PC)
	}
	if c.SP != 0 {
		t.Errorf("SP should be 0, got %d", c.SP)
	}
	if c.I != 0 {
		t.Errorf("I should be 0, got %d", c.I)
	}
	for i, b := range loResFont {
		if c.Memory[LoFontAddr+i] != b {
			t.Errorf("low-res font byte %d: got %#x, want %#x", i, c.Memory[LoFontAddr+i], b)
		}
	}
	for i, b := range hiResFont {
		if c.Memory[HiFontAddr+i] != b {
			t.Errorf("high-res font byte %d: got %#x, want %#x", i, c.Memory[HiFontAddr+i], b)
		}
	}
}

func TestReset(t *testing.T) {
	c := New()

	c.PC = 0x300
	c.V[0] = 42
	c.I = 100
	c.SP = 5
	c.DT = 10
	c.RPL[0] = 9

	c.Reset()

	if c.PC != ProgramStart {
		t.Errorf("PC should be %#x, got %#x", ProgramStart, c.PC)
	}
	if c.V[0] != 0 {
		t.Errorf("V0 should be 0, got %d", c.V[0])
	}
	if c.I != 0 {
		t.Errorf("I should be 0, got %d", c.I)
	}
	if c.SP != 0 {
		t.Errorf("SP should be 0, got %d", c.SP)
	}
	if c.DT != 0 {
		t.Errorf("DT should be 0, got %d", c.DT)
	}
	if c.RPL[0] != 9 {
		t.Errorf("RPL slots must survive Reset, got %d", c.RPL[0])
	}
}

func TestLoad(t *testing.T) {
	c := New()
	rom := []byte{0x00, 0xE0, 0x12, 0x00}

	if err := c.Load(rom); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Memory[ProgramStart] != 0x00 || c.Memory[ProgramStart+1] != 0xE0 {
		t.Error("ROM not loaded at ProgramStart")
	}
}

func TestLoadOversized(t *testing.T) {
	c := New()
	c.V[3] = 7 // state before the rejected load

	rom := make([]byte, MaxROMSize+1)
	err := c.Load(rom)
	if err != ErrOversizedROM {
		t.Errorf("expected ErrOversizedROM, got %v", err)
	}
	if c.V[3] != 7 {
		t.Error("state must be unchanged after a rejected load")
	}
}

func TestCLS(t *testing.T) {
	c := New()
	c.Load([]byte{0x00, 0xE0})
	plane, _, _ := c.activePlane()
	plane[0], plane[100], plane[500] = 1, 1, 1

	c.Step()

	plane, _, _ = c.activePlane()
	for i, p := range plane {
		if p != 0 {
			t.Fatalf("Display[%d] should be 0 after CLS", i)
		}
	}
}

func TestJP(t *testing.T) {
	c := New()
	c.Load([]byte{0x14, 0x00})
	c.Step()
	if c.PC != 0x400 {
		t.Errorf("PC should be 0x400 after JP, got %#x", c.PC)
	}
}

func TestCallAndReturn(t *testing.T) {
	c := New()
	c.Load([]byte{0x24, 0x00}) // CALL 0x400 at 0x200

	c.Step()
	if c.PC != 0x400 {
		t.Errorf("PC should be 0x400 after CALL, got %#x", c.PC)
	}
	if c.SP != 1 {
		t.Errorf("SP should be 1 after CALL, got %d", c.SP)
	}
	if c.Stack[0] != ProgramStart {
		t.Errorf("Stack[0] should be %#x (the CALL's own address), got %#x", ProgramStart, c.Stack[0])
	}

	c.Memory[0x400], c.Memory[0x401] = 0x00, 0xEE
	c.Step()
	if c.PC != ProgramStart+2 {
		t.Errorf("PC should be %#x after RET, got %#x", ProgramStart+2, c.PC)
	}
	if c.SP != 0 {
		t.Errorf("SP should be 0 after RET, got %d", c.SP)
	}
}

func TestCallStackOverflowIsNoOp(t *testing.T) {
	c := New()
	c.Load([]byte{0x22, 0x00}) // CALL 0x200, i.e. itself
	c.SP = StackSize

	c.Step()
	if c.SP != StackSize {
		t.Errorf("SP should stay at %d on overflow, got %d", StackSize, c.SP)
	}
	if c.PC != ProgramStart+2 {
		t.Errorf("PC should advance by 2 on overflow no-op, got %#x", c.PC)
	}
}

func TestReturnStackUnderflowIsNoOp(t *testing.T) {
	c := New()
	c.Load([]byte{0x00, 0xEE})

	c.Step()
	if c.PC != ProgramStart+2 {
		t.Errorf("PC should advance by 2 on underflow no-op, got %#x", c.PC)
	}
}

func TestSkipEqualImmediate(t *testing.T) {
	c := New()
	c.Load([]byte{0x30, 0x42})
	c.V[0] = 0x42
	c.Step()
	if c.PC != ProgramStart+4 {
		t.Errorf("PC should be %#x after matching SE, got %#x", ProgramStart+4, c.PC)
	}

	c = New()
	c.Load([]byte{0x30, 0x42})
	c.V[0] = 0x41
	c.Step()
	if c.PC != ProgramStart+2 {
		t.Errorf("PC should be %#x after non-matching SE, got %#x", ProgramStart+2, c.PC)
	}
}

func TestAddImmediateWraps(t *testing.T) {
	c := New()
	c.Load([]byte{0x70, 0x02})
	c.V[0] = 0xFF
	c.Step()
	if c.V[0] != 0x01 {
		t.Errorf("V0 should wrap to 0x01, got %#x", c.V[0])
	}
	if c.V[0xF] != 0 {
		t.Error("7XNN must never touch VF")
	}
}

func TestLoadIndex(t *testing.T) {
	c := New()
	c.Load([]byte{0xA4, 0x56})
	c.Step()
	if c.I != 0x456 {
		t.Errorf("I should be 0x456, got %#x", c.I)
	}
}

func TestBCD(t *testing.T) {
	c := New()
	c.Load([]byte{0xF0, 0x33})
	c.V[0] = 123
	c.I = 0x300
	c.Step()

	if c.Memory[0x300] != 1 || c.Memory[0x301] != 2 || c.Memory[0x302] != 3 {
		t.Errorf("BCD digits wrong: got %d %d %d", c.Memory[0x300], c.Memory[0x301], c.Memory[0x302])
	}
}

func TestStoreLoadRegistersDoNotTouchI(t *testing.T) {
	c := New()
	c.Load([]byte{0xF2, 0x55})
	c.I = 0x300
	c.V[0], c.V[1], c.V[2] = 0xAA, 0xBB, 0xCC
	c.Step()

	if c.Memory[0x300] != 0xAA || c.Memory[0x301] != 0xBB || c.Memory[0x302] != 0xCC {
		t.Error("FX55 did not store registers correctly")
	}
	if c.I != 0x300 {
		t.Errorf("FX55 must not modify I, got %#x", c.I)
	}

	c = New()
	c.Load([]byte{0xF2, 0x65})
	c.I = 0x300
	c.Memory[0x300], c.Memory[0x301], c.Memory[0x302] = 0xAA, 0xBB, 0xCC
	c.Step()

	if c.V[0] != 0xAA || c.V[1] != 0xBB || c.V[2] != 0xCC {
		t.Error("FX65 did not load registers correctly")
	}
	if c.I != 0x300 {
		t.Errorf("FX65 must not modify I, got %#x", c.I)
	}
}

func TestRPLSaveRestoreClampsTo8(t *testing.T) {
	c := New()
	c.Load([]byte{0xFF, 0x75}) // LD R, VF -> should clamp to 8 slots
	for i := 0; i < 16; i++ {
		c.V[i] = byte(i + 1)
	}
	c.Step()

	for i := 0; i < 8; i++ {
		if c.RPL[i] != byte(i+1) {
			t.Errorf("RPL[%d] = %d, want %d", i, c.RPL[i], i+1)
		}
	}

	c.V = [16]byte{}
	c.Memory[c.PC], c.Memory[c.PC+1] = 0xFF, 0x85
	c.Step()
	for i := 0; i < 8; i++ {
		if c.V[i] != byte(i+1) {
			t.Errorf("V[%d] after RPL restore = %d, want %d", i, c.V[i], i+1)
		}
	}
}

func TestKeyWaitSuspendsAndResolves(t *testing.T) {
	c := New()
	c.Load([]byte{0xF0, 0x0A, 0x12, 0x02}) // LD V0, K ; JP 0x202

	for i := 0; i < 100; i++ {
		c.Step()
	}
	if c.PC != ProgramStart {
		t.Errorf("PC should remain at ProgramStart while waiting, got %#x", c.PC)
	}
	if !c.Waiting() {
		t.Error("CPU should be waiting for a key")
	}
	if c.V[0] != 0 {
		t.Error("V0 should be untouched while waiting")
	}

	c.KeyDown(7)
	if c.Waiting() {
		t.Error("CPU should no longer be waiting")
	}
	if c.V[0] != 7 {
		t.Errorf("V0 should be 7, got %d", c.V[0])
	}
	if c.PC != ProgramStart+2 {
		t.Errorf("PC should be %#x, got %#x", ProgramStart+2, c.PC)
	}
}

func TestModeSwitchPreservesPlanes(t *testing.T) {
	c := New()
	lo, _, _ := c.activePlane()
	lo[0] = 1

	c.mode = ModeHi
	c.mode = ModeLo
	lo, _, _ = c.activePlane()
	if lo[0] != 1 {
		t.Error("switching modes must not clear plane contents")
	}
}

func TestUnknownOpcodeIsNoOp(t *testing.T) {
	c := New()
	c.Load([]byte{0x50, 0x01}) // 5XY1: undefined n for family 5
	c.Step()
	if c.PC != ProgramStart+2 {
		t.Errorf("unknown opcode should just advance PC by 2, got %#x", c.PC)
	}
}
