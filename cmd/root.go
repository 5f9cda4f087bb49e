package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// currentReleaseVersion is used to print the version the user currently has installed
const currentReleaseVersion = "v0.1.0"

// rootCmd is the base for all commands.
var rootCmd = &cobra.Command{
	Use:   "chip8vm [command]",
	Short: "chip8vm is a CHIP-8 and Super-CHIP emulator",
	Long:  "chip8vm is a CHIP-8 and Super-CHIP emulator",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Unknown command. Try `chip8vm help` for more information")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs chip8vm according to the user's command/subcommand/flags
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
