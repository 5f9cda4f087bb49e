package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/superchip8/emulator/audio"
	"github.com/superchip8/emulator/chip8"
	"github.com/superchip8/emulator/config"
	"github.com/superchip8/emulator/display"
	"github.com/superchip8/emulator/input"
)

// TimerFrequency is the fixed 60 Hz rate at which DT/ST decrement,
// independent of the configurable instruction clock.
const TimerFrequency = 60

var (
	scale     int
	speed     int
	statePath string
)

// runCmd runs the emulator against a ROM file until the window is closed.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run a CHIP-8 or Super-CHIP ROM",
	Args:  cobra.ExactArgs(1),
	Run:   runEmulator,
}

func init() {
	runCmd.Flags().IntVar(&scale, "scale", 0, "display scale factor (0 uses the configured default)")
	runCmd.Flags().IntVar(&speed, "speed", 0, "instructions per second (0 uses the configured default)")
	runCmd.Flags().StringVar(&statePath, "load-state", "", "resume from a previously saved state file")
}

func runEmulator(cmd *cobra.Command, args []string) {
	romPath := args[0]

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	mgr := config.NewManager(home + "/.chip8vm/settings.json")
	settings, err := mgr.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load settings: %v\n", err)
		settings = config.Default()
	}
	if scale > 0 {
		settings.PixelScale = scale
	}
	if speed > 0 {
		settings.ClockSpeed = speed
	}

	romData, err := os.ReadFile(romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading ROM: %v\n", err)
		os.Exit(1)
	}

	vm := chip8.New()
	if err := vm.Load(romData); err != nil {
		fmt.Fprintf(os.Stderr, "error loading ROM into memory: %v\n", err)
		os.Exit(1)
	}

	if statePath != "" {
		snap, err := loadState(statePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading state: %v\n", err)
			os.Exit(1)
		}
		vm.Restore(snap)
	}

	disp, err := display.New("chip8vm", int32(settings.PixelScale))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing display: %v\n", err)
		os.Exit(1)
	}
	defer disp.Close()

	beeper, err := audio.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not initialize audio: %v\n", err)
	} else {
		defer beeper.Close()
	}

	keyboard := input.New(vm)

	cycleInterval := time.Second / time.Duration(settings.ClockSpeed)
	timerInterval := time.Second / TimerFrequency

	running := true
	paused := false
	lastCycleTime := time.Now()
	lastTimerTime := time.Now()

	fmt.Printf("Running %s at %d Hz\n", romPath, settings.ClockSpeed)
	fmt.Println("Keys: 1234 QWER ASDF ZXCV (mapped to the CHIP-8 keypad)")
	fmt.Println("Esc quit, P pause, R reset, F5 save state, F9 load state")

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					if e.Type == sdl.KEYUP {
						keyboard.HandleKeyUp(e.Keysym.Sym)
					}
					continue
				}

				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_p:
					paused = !paused
					if paused {
						disp.SetTitle("chip8vm (paused)")
					} else {
						disp.SetTitle("chip8vm")
					}
				case sdl.K_r:
					vm.Reset()
					if err := vm.Load(romData); err != nil {
						fmt.Fprintf(os.Stderr, "error reloading ROM: %v\n", err)
					}
					keyboard.Reset()
				case sdl.K_F5:
					if err := saveState(defaultStatePath(romPath), vm.Snapshot()); err != nil {
						fmt.Fprintf(os.Stderr, "error saving state: %v\n", err)
					}
				case sdl.K_F9:
					if snap, err := loadState(defaultStatePath(romPath)); err != nil {
						fmt.Fprintf(os.Stderr, "error loading state: %v\n", err)
					} else {
						vm.Restore(snap)
					}
				default:
					keyboard.HandleKeyDown(e.Keysym.Sym)
				}
			}
		}

		if paused {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		now := time.Now()

		if now.Sub(lastCycleTime) >= cycleInterval {
			vm.Step()
			lastCycleTime = now
			if vm.Halted() {
				running = false
			}
		}

		if now.Sub(lastTimerTime) >= timerInterval {
			vm.TickTimers()
			if beeper != nil {
				beeper.Update(vm.ShouldBeep())
			}
			plane, w, h := vm.Display()
			disp.Render(plane, w, h)
			lastTimerTime = now
		}

		time.Sleep(time.Microsecond * 100)
	}

	fmt.Println("Emulator stopped.")
}

func defaultStatePath(romPath string) string {
	return romPath + ".ch8state"
}
