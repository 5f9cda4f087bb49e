// Package chip8 implements the CHIP-8 and Super-CHIP virtual machine: a
// cycle-stepped interpreter over a 4KiB memory, a small register file, and
// two monochrome framebuffers composed through XOR sprite drawing.
package chip8

import (
	"log"
	"math/rand"
	"time"
)

// Mode selects which of the two framebuffers is active.
type Mode uint8

const (
	ModeLo Mode = iota
	ModeHi
)

// CPU holds the full state of one CHIP-8/Super-CHIP virtual machine.
type CPU struct {
	Memory [MemorySize]byte
	V      [16]byte
	I      uint16
	PC     uint16
	Stack  [StackSize]uint16
	SP     uint8
	DT     byte
	ST     byte
	RPL    [NumRPL]byte

	Keys [NumKeys]bool

	loRes [LoResWidth * LoResHeight]byte
	hiRes [HiResWidth * HiResHeight]byte
	mode  Mode

	waiting bool
	waitReg uint8

	halted           bool
	cycles           uint64
	loggedStackFault bool

	rng *rand.Rand
}

// New creates a CPU seeded from the wall clock, ready to Load a ROM.
func New() *CPU {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a CPU whose CXNN instruction draws from src. Tests
// that depend on RND must use a deterministic source.
func NewWithSource(src rand.Source) *CPU {
	c := &CPU{rng: rand.New(src)}
	c.Reset()
	return c
}

// Reset restores the CPU to its power-on state: memory cleared and
// refilled with both font tables, registers and both framebuffers
// cleared, keys and timers zeroed, PC set to ProgramStart, SP to 0, and
// mode to low-res. RPL slots are deliberately left untouched — they are
// persistent across reset, per the Super-CHIP convention they model.
func (c *CPU) Reset() {
	c.Memory = [MemorySize]byte{}
	c.writeFonts()

	c.V = [16]byte{}
	c.I = 0
	c.PC = ProgramStart
	c.Stack = [StackSize]uint16{}
	c.SP = 0
	c.DT = 0
	c.ST = 0

	c.loRes = [LoResWidth * LoResHeight]byte{}
	c.hiRes = [HiResWidth * HiResHeight]byte{}
	c.mode = ModeLo

	c.Keys = [NumKeys]bool{}
	c.waiting = false
	c.waitReg = 0

	c.halted = false
	c.cycles = 0
	c.loggedStackFault = false
}

// Step executes one opcode, or does nothing if the CPU is halted or
// suspended waiting for a key press.
func (c *CPU) Step() {
	if c.halted || c.waiting {
		return
	}

	addr := c.PC & 0xFFF
	op := uint16(c.Memory[addr])<<8 | uint16(c.Memory[(addr+1)&0xFFF])
	c.cycles++

	hi := op >> 12
	x := (op >> 8) & 0xF
	y := (op >> 4) & 0xF
	n := byte(op & 0xF)
	nn := byte(op & 0xFF)
	nnn := op & 0xFFF

	switch hi {
	case 0x0:
		c.exec0(op, n)
	case 0x1:
		c.PC = nnn
	case 0x2:
		c.call(nnn)
	case 0x3:
		if c.V[x] == nn {
			c.PC += 4
		} else {
			c.PC += 2
		}
	case 0x4:
		if c.V[x] != nn {
			c.PC += 4
		} else {
			c.PC += 2
		}
	case 0x5:
		if n == 0 {
			if c.V[x] == c.V[y] {
				c.PC += 4
			} else {
				c.PC += 2
			}
		} else {
			c.PC += 2
		}
	case 0x6:
		c.V[x] = nn
		c.PC += 2
	case 0x7:
		c.V[x] = c.V[x] + nn
		c.PC += 2
	case 0x8:
		c.alu(x, y, n)
		c.PC += 2
	case 0x9:
		if n == 0 {
			if c.V[x] != c.V[y] {
				c.PC += 4
			} else {
				c.PC += 2
			}
		} else {
			c.PC += 2
		}
	case 0xA:
		c.I = nnn
		c.PC += 2
	case 0xB:
		c.PC = nnn + uint16(c.V[0])
	case 0xC:
		c.V[x] = byte(c.rng.Intn(256)) & nn
		c.PC += 2
	case 0xD:
		c.draw(x, y, n)
		c.PC += 2
	case 0xE:
		c.execE(x, nn)
	case 0xF:
		c.execF(x, nn)
	}
}

func (c *CPU) exec0(op uint16, n byte) {
	switch {
	case op == 0x00E0:
		c.cls()
		c.PC += 2
	case op == 0x00EE:
		c.ret()
	case op&0xFFF0 == 0x00C0:
		c.scrollDown(int(n))
		c.PC += 2
	case op == 0x00FB:
		c.scrollRight()
		c.PC += 2
	case op == 0x00FC:
		c.scrollLeft()
		c.PC += 2
	case op == 0x00FD:
		c.halted = true
	case op == 0x00FE:
		c.mode = ModeLo
		c.PC += 2
	case op == 0x00FF:
		c.mode = ModeHi
		c.PC += 2
	default: // 0NNN SYS, ignored
		c.PC += 2
	}
}

func (c *CPU) execE(x uint16, nn byte) {
	key := c.V[x] & 0xF
	switch nn {
	case 0x9E:
		if c.Keys[key] {
			c.PC += 4
		} else {
			c.PC += 2
		}
	case 0xA1:
		if !c.Keys[key] {
			c.PC += 4
		} else {
			c.PC += 2
		}
	default:
		c.PC += 2
	}
}

func (c *CPU) execF(x uint16, nn byte) {
	switch nn {
	case 0x07:
		c.V[x] = c.DT
		c.PC += 2
	case 0x0A:
		c.waiting = true
		c.waitReg = uint8(x)
		// PC deliberately not advanced: KeyDown resolves the wait.
	case 0x15:
		c.DT = c.V[x]
		c.PC += 2
	case 0x18:
		c.ST = c.V[x]
		c.PC += 2
	case 0x1E:
		c.I = (c.I + uint16(c.V[x])) & 0xFFFF
		c.PC += 2
	case 0x29:
		c.I = uint16(c.V[x]&0xF) * 5
		c.PC += 2
	case 0x30:
		c.I = HiFontAddr + uint16(c.V[x]&0xF)*10
		c.PC += 2
	case 0x33:
		v := c.V[x]
		c.Memory[c.I&0xFFF] = v / 100
		c.Memory[(c.I+1)&0xFFF] = (v / 10) % 10
		c.Memory[(c.I+2)&0xFFF] = v % 10
		c.PC += 2
	case 0x55:
		for i := uint16(0); i <= x; i++ {
			c.Memory[(c.I+i)&0xFFF] = c.V[i]
		}
		c.PC += 2
	case 0x65:
		for i := uint16(0); i <= x; i++ {
			c.V[i] = c.Memory[(c.I+i)&0xFFF]
		}
		c.PC += 2
	case 0x75:
		cnt := rplCount(x)
		for i := 0; i < cnt; i++ {
			c.RPL[i] = c.V[i]
		}
		c.PC += 2
	case 0x85:
		cnt := rplCount(x)
		for i := 0; i < cnt; i++ {
			c.V[i] = c.RPL[i]
		}
		c.PC += 2
	default:
		c.PC += 2
	}
}

func rplCount(x uint16) int {
	cnt := int(x) + 1
	if cnt > NumRPL {
		cnt = NumRPL
	}
	return cnt
}

func (c *CPU) call(nnn uint16) {
	if c.SP >= StackSize {
		c.logStackFault("stack overflow on CALL")
		c.PC += 2
		return
	}
	c.Stack[c.SP] = c.PC
	c.SP++
	c.PC = nnn
}

func (c *CPU) ret() {
	if c.SP == 0 {
		c.logStackFault("stack underflow on RET")
		c.PC += 2
		return
	}
	c.SP--
	c.PC = c.Stack[c.SP] + 2
}

func (c *CPU) logStackFault(msg string) {
	if c.loggedStackFault {
		return
	}
	log.Printf("chip8: %s (pc=0x%03X)", msg, c.PC)
	c.loggedStackFault = true
}

// KeyDown marks key k pressed. If the CPU is suspended in FX0A, this
// resolves the wait: the key code is written into the waiting register
// and PC advances by 2.
func (c *CPU) KeyDown(k uint8) {
	if k >= NumKeys {
		return
	}
	c.Keys[k] = true
	if c.waiting {
		c.V[c.waitReg] = k
		c.waiting = false
		c.PC += 2
	}
}

// KeyUp marks key k released.
func (c *CPU) KeyUp(k uint8) {
	if k >= NumKeys {
		return
	}
	c.Keys[k] = false
}

// Halted reports whether the CPU executed a Super-CHIP EXIT instruction.
func (c *CPU) Halted() bool {
	return c.halted
}

// Waiting reports whether the CPU is suspended in FX0A.
func (c *CPU) Waiting() bool {
	return c.waiting
}

// Cycles returns the number of opcodes executed since the last Reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Display returns a read-only snapshot of the active plane and its
// dimensions. The returned slice is a copy; mutating it has no effect on
// CPU state.
func (c *CPU) Display() (plane []byte, width, height int) {
	src, w, h := c.activePlane()
	out := make([]byte, len(src))
	copy(out, src)
	return out, w, h
}

func (c *CPU) activePlane() (plane []byte, width, height int) {
	if c.mode == ModeHi {
		return c.hiRes[:], HiResWidth, HiResHeight
	}
	return c.loRes[:], LoResWidth, LoResHeight
}
