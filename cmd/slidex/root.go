package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"slidex/internal/app"
	"slidex/internal/config"
	"slidex/internal/eventbus"
	"slidex/internal/logging"
	"slidex/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "slidex [deck]",
	Short: "Slidex presents markdown slides as a carousel",
	Long: `Slidex shows a markdown deck as a sliding carousel in the terminal.

A deck is either a single markdown file split into slides at lines containing
only "---", or a directory where every .md file is one slide. With no argument
the current directory is used.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	registerFlags(rootCmd)
}

// registerFlags declares the CLI flags; every carousel option has one
func registerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "config file (default is "+config.DefaultPath()+")")
	f.Bool("save-config", false, "write the effective options back to the config file")
	f.Bool("debug", false, "log at debug level")
	f.Bool("no-alt-screen", false, "draw inline instead of on the alternate screen")
	f.Bool("no-mouse", false, "disable mouse clicks and hover pause")
	f.String("theme", "", "glamour style for slide bodies: auto, dark, light, notty")

	f.IntP("item", "i", 0, "slides per page")
	f.Int("speed", 0, "transition duration in milliseconds")
	f.BoolP("loop", "L", false, "wrap around the ends")
	f.Bool("navigation", true, "show page indicators")
	f.Bool("control", true, "show prev/next controls")
	f.StringSlice("control-text", nil, "prev and next control glyphs, comma separated")
	f.StringSlice("prev-keys", nil, "custom keys for the prev control, replaces the default")
	f.StringSlice("next-keys", nil, "custom keys for the next control, replaces the default")
	f.String("slide-by", "", `slides per move, a number or "page"`)
	f.BoolP("autoplay", "a", false, "advance automatically")
	f.Int("autoplay-timeout", 0, "autoplay interval in milliseconds")
	f.Bool("autoplay-hover-pause", true, "pause autoplay while the pointer is over the carousel")
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	debug, _ := flags.GetBool("debug")

	logger, closeLog, err := logging.OpenFile(logging.DefaultFile, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slidex: %v\n", err)
	}
	defer func() { _ = closeLog() }()

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogger(bus, logger)

	configPath, _ := flags.GetString("config")
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if save, _ := flags.GetBool("save-config"); save {
		if err := configSvc.Save(cfg); err != nil {
			return err
		}
	}

	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	engine := app.Create(target, opts, logger, bus)
	if engine == nil {
		return fmt.Errorf("slidex: nothing to present at %s, see %s", target, logging.DefaultFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(engine, target, cfg.UI.Theme, bus, logger)
	p := tea.NewProgram(model, programOptions(ctx, cfg)...)
	model.SetProgram(p)

	logger.Info("starting UI")
	if _, err := p.Run(); err != nil {
		logger.Error("error running program", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}

func programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithReportFocus()}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	return opts
}

// subscribeLogger writes carousel events to the log file
func subscribeLogger(bus eventbus.EventBus, logger *log.Logger) {
	bus.Subscribe(eventbus.EventDeckLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.DeckLoadedEvent); ok {
			logger.Info("deck loaded", "source", ev.Source, "slides", ev.Count)
		}
	})
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SlideChangedEvent); ok {
			logger.Debug("slide changed", "from", ev.From, "to", ev.To, "page", ev.ActivePage)
		}
	})
	bus.Subscribe(eventbus.EventLoopCorrected, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.LoopCorrectedEvent); ok {
			logger.Debug("loop corrected", "from", ev.From, "to", ev.To)
		}
	})
	bus.Subscribe(eventbus.EventMoveRejected, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.MoveRejectedEvent); ok {
			logger.Debug("move rejected", "step", ev.Step)
		}
	})
	bus.Subscribe(eventbus.EventAutoplayStarted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.AutoplayStartedEvent); ok {
			logger.Debug("autoplay started", "timer", ev.Timer)
		}
	})
	bus.Subscribe(eventbus.EventAutoplayStopped, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.AutoplayStoppedEvent); ok {
			logger.Debug("autoplay stopped", "reason", ev.Reason)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			logger.Error(ev.Message, "error", ev.Err)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logger.Info("config loaded", "path", ev.Path)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigSavedEvent); ok {
			logger.Info("config saved", "path", ev.Path)
		}
	})
}
