package chip8

// Snapshot is an immutable, deep-copied record of CPU state. It excludes
// key state, the key-wait flag, and the RPL slots — live inputs persist
// across a Restore, and RPL persists independently of both Reset and
// snapshotting.
type Snapshot struct {
	Memory [MemorySize]byte
	V      [16]byte
	I      uint16
	PC     uint16
	Stack  [StackSize]uint16
	SP     uint8
	DT     byte
	ST     byte
	Mode   Mode
	LoRes  [LoResWidth * LoResHeight]byte
	HiRes  [HiResWidth * HiResHeight]byte
	Cycles uint64
}

// Snapshot returns a deep copy of the current CPU state suitable for
// later Restore.
func (c *CPU) Snapshot() *Snapshot {
	return &Snapshot{
		Memory: c.Memory,
		V:      c.V,
		I:      c.I,
		PC:     c.PC,
		Stack:  c.Stack,
		SP:     c.SP,
		DT:     c.DT,
		ST:     c.ST,
		Mode:   c.mode,
		LoRes:  c.loRes,
		HiRes:  c.hiRes,
		Cycles: c.cycles,
	}
}

// Restore replaces the current CPU state with s. Key state and the
// key-wait flag are left untouched: live inputs persist across a state
// load.
func (c *CPU) Restore(s *Snapshot) {
	c.Memory = s.Memory
	c.V = s.V
	c.I = s.I
	c.PC = s.PC
	c.Stack = s.Stack
	c.SP = s.SP
	c.DT = s.DT
	c.ST = s.ST
	c.mode = s.Mode
	c.loRes = s.LoRes
	c.hiRes = s.HiRes
	c.cycles = s.Cycles
}
