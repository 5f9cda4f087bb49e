// Command chip8vm runs a CHIP-8/Super-CHIP emulator.
package main

import "github.com/superchip8/emulator/cmd"

func main() {
	cmd.Execute()
}
