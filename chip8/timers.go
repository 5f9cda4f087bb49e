package chip8

// TickTimers decrements DT and ST by one each, saturating at zero. The
// host is expected to call this at 60Hz, independent of how often Step
// is called.
func (c *CPU) TickTimers() {
	if c.DT > 0 {
		c.DT--
	}
	if c.ST > 0 {
		c.ST--
	}
}

// ShouldBeep reports whether the sound timer is active. The host polls
// this to start or stop a tone; the core models no waveform itself.
func (c *CPU) ShouldBeep() bool {
	return c.ST > 0
}
