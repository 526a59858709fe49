package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/status"
	"github.com/lixenwraith/invaders/terminal"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/invaders.log")
	muteFlag   = flag.Bool("mute", false, "Disable sound effects")
	tuningFlag = flag.String("tuning", "", "YAML file overriding gameplay tuning")
)

func main() {
	os.Exit(run())
}

// crash restores the terminal and reports a panic from any goroutine
func crash(r any) {
	terminal.EmergencyReset(os.Stdout)
	// \r\n for raw mode compatibility
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINVADERS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func run() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}
	// Flags override the environment only when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "mute":
			cfg.Muted = *muteFlag
		case "tuning":
			cfg.TuningFile = *tuningFlag
		}
	})

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	tuning, err := cfg.Tuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Tuning error: %v\n", err)
		return 1
	}

	// Audio is optional; the game runs silent without a device
	sfx := audio.NewSoundManager(cfg.Audio())
	if err := sfx.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sfx.Cleanup()

	sess, err := terminal.Open(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	defer sess.Close()

	w, h := sess.Size()
	if err := config.CheckFits(tuning.Cols, tuning.Rows, w, h); err != nil {
		sess.Close()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	screenTerm := render.NewScreenTerminal(sess.Screen, nil)

	metrics := status.NewRegistry()
	frames := make(chan core.Frame, tuning.FrameQueueSize)
	pipeline := render.NewPipeline(screenTerm, tuning.Cols, tuning.Rows, frames, metrics)
	pipeline.SetCrashHandler(crash)
	pipeline.Start()

	src := input.NewScreenSource(sess.Screen, nil)
	defer src.Close()

	game := engine.NewGame(tuning, engine.NewMonotonicTimeProvider(), src, sfx, frames)
	outcome := game.Run()

	// Run closed the channel; the renderer drains and exits
	pipeline.Wait()
	sfx.Wait()
	sess.Close()

	log.Printf("render metrics: %v", metrics.Snapshot())
	st := game.Stats()
	switch outcome {
	case engine.OutcomeWin:
		fmt.Printf("You win! %d invaders destroyed.\n", st.Kills)
	case engine.OutcomeLose:
		fmt.Printf("The invaders landed. %d destroyed.\n", st.Kills)
	default:
		fmt.Printf("Bye. %d invaders destroyed.\n", st.Kills)
	}
	return 0
}
