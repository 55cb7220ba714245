package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"taskpomodoro/internal/config"
	"taskpomodoro/internal/notify"
	"taskpomodoro/internal/session"
	"taskpomodoro/internal/sound"
	"taskpomodoro/internal/timer"
	"taskpomodoro/internal/ui"
)

var (
	configPath string
	debug      bool
	mute       bool
)

var rootCmd = &cobra.Command{
	Use:   "taskpomodoro",
	Short: "Work timer that earns you rest",
	Long: `TaskPomodoro counts your work time and turns it into rest:
five minutes for every full 25 minutes worked, never less than five.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(newLogger(debug))
	},
}

var restCmd = &cobra.Command{
	Use:   "rest <work duration>",
	Short: "Print the rest earned by a work duration, e.g. 50m",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		work, err := time.ParseDuration(args[0])
		if err != nil {
			return fmt.Errorf("parsing work duration: %w", err)
		}
		if work < 0 {
			return fmt.Errorf("work duration %s is negative", work)
		}
		rest := time.Duration(session.ComputeRestSeconds(int(work.Seconds()))) * time.Second
		fmt.Fprintf(cmd.OutOrStdout(), "%s of work earns %s of rest\n", work, rest)
		return nil
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug output to stderr")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "Start with sound alerts off")

	rootCmd.AddCommand(restCmd)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runApp(logger *slog.Logger) error {
	slog.SetDefault(logger)

	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "path", path)

	a := app.NewWithID(APP_ID)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Notifications.Enabled {
		notifier = notify.NewDesktop(a, logger)
	}
	player := sound.NewPlayer(cfg.Sound.Volume, cfg.Sound.Enabled && !mute)

	var win *ui.MainWindow
	ctrl := timer.New(timer.Options{
		Notifier:            notifier,
		Player:              player,
		HourlyNotifications: cfg.Notifications.Hourly,
		OnChange:            func(s timer.Snapshot) { win.Update(s) },
		OnRestComplete:      func() { win.RestComplete() },
		Logger:              logger,
	})
	win = ui.NewMainWindow(a, ctrl, ui.Options{
		Title:  APP_NAME,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Sound:  player,
		Logger: logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ctrl.Run(ctx) }()

	win.ShowAndRun()
	cancel()
	return <-done
}
