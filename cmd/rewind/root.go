package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/rewind/audio"
	"github.com/lixenwraith/rewind/config"
	"github.com/lixenwraith/rewind/core"
	"github.com/lixenwraith/rewind/engine"
	"github.com/lixenwraith/rewind/event"
	"github.com/lixenwraith/rewind/game"
	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/render"
	"github.com/lixenwraith/rewind/status"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// options holds the command-line flags
type options struct {
	configPath string
	debug      bool
	mute       bool
	stats      bool
	start      int
	lower      int
	upper      int
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewind [flags]",
		Short: "Terminal platformer on a reversible clock",
		Long: `rewind is a terminal platformer where time can run backward.

Every tick the world is recorded; inverting time replays it in reverse while your
past self walks its path as a ghost.

Keys:
  left/right, a/d, h/l   move
  up, space, w, k        jump
  i                      invert time (or walk through a mirror)
  p                      pause / resume after a time limit
  r                      reset the world
  m                      mute
  q, esc, ctrl-c         quit

Examples:
  rewind                          # Play with default settings
  rewind --config rewind.toml     # Load settings from a TOML file
  rewind --start 2 --upper 4      # Start at 2:00 with a 4 minute limit
  rewind --debug                  # Write logs/rewind.log and show metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile := setupLogging(opts.debug)
			if logFile != nil {
				defer logFile.Close()
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"TOML or YAML configuration file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false,
		"Enable debug logging to logs/rewind.log")
	cmd.Flags().BoolVar(&opts.mute, "mute", false,
		"Disable sound effects")
	cmd.Flags().BoolVar(&opts.stats, "stats", false,
		"Show the metrics line below the HUD")
	cmd.Flags().IntVar(&opts.start, "start", parameter.DefaultStartingMinute,
		"Starting minute of the clock")
	cmd.Flags().IntVar(&opts.lower, "lower", parameter.DefaultTimeLimitLower,
		"Lower time limit in minutes")
	cmd.Flags().IntVar(&opts.upper, "upper", parameter.DefaultTimeLimitUpper,
		"Upper time limit in minutes")

	return cmd
}

// loadConfig layers explicitly set flags over the file and environment configuration
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Clock.StartingMinute = opts.start
	}
	if flags.Changed("lower") {
		cfg.Clock.TimeLimitLower = opts.lower
	}
	if flags.Changed("upper") {
		cfg.Clock.TimeLimitUpper = opts.upper
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// worldSettings maps the runtime configuration onto the world
func worldSettings(cfg *config.Config) game.Settings {
	return game.Settings{
		Clock: engine.ClockSettings{
			StartingMinute: cfg.Clock.StartingMinute,
			TimeLimitLower: cfg.Clock.TimeLimitLower,
			TimeLimitUpper: cfg.Clock.TimeLimitUpper,
		},
		Width:     cfg.Game.Width,
		Height:    cfg.Game.Height,
		MaxGhosts: cfg.Game.MaxGhosts,
	}
}

// audioConfig maps the runtime configuration onto the sound manager
func audioConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	return ac
}

// applyReload carries the settings that can change mid-game, the clock and world keep their startup values
// --mute keeps sound off across reloads
func applyReload(sound *audio.SoundManager, next *config.Config, forceMute bool) {
	sound.SetMasterVolume(next.Audio.Volume)
	sound.SetMuted(forceMute || !next.Audio.Enabled)
}

// run owns the terminal for the lifetime of the game
func run(cfg *config.Config, opts *options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	reg := status.NewRegistry()
	if opts.debug {
		defer func() {
			if err := writeMetrics(reg); err != nil {
				log.Printf("Metrics dump failed: %v", err)
			}
		}()
	}

	sound := audio.NewSoundManager(audioConfig(cfg), reg)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()

	queue := event.NewEventQueue()
	world := game.NewWorld(worldSettings(cfg), queue, sound, reg)
	renderer := render.NewTerminalRenderer(screen, reg, opts.debug || opts.stats)

	tickInterval := time.Second / time.Duration(cfg.Clock.TickRate)
	scheduler := engine.NewClockScheduler(world.Tick, engine.NewMonotonicTimeProvider(), tickInterval, reg)
	scheduler.Start()
	defer scheduler.Stop()

	if opts.configPath != "" {
		watcher, err := config.Watch(opts.configPath, func(next *config.Config) {
			applyReload(sound, next, opts.mute)
		})
		if err != nil {
			log.Printf("Config watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	log.Printf("Started at %d:00, limits %d..%d minutes, %d ticks/s",
		cfg.Clock.StartingMinute, cfg.Clock.TimeLimitLower, cfg.Clock.TimeLimitUpper, cfg.Clock.TickRate)

	eventChan := make(chan tcell.Event, parameter.InputQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if isMuteToggle(ev) {
					log.Printf("Muted: %v", sound.ToggleMute())
					continue
				}
				if et, ok := translateKey(ev); ok {
					queue.Push(event.GameEvent{Type: et})
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			renderer.RenderFrame(world)
		}
	}
}
