package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/nbodyviz/internal/config"
	"github.com/san-kum/nbodyviz/internal/playback"
	"github.com/san-kum/nbodyviz/internal/series"
	"github.com/san-kum/nbodyviz/internal/storage"
	"github.com/san-kum/nbodyviz/internal/viz"
)

var programOptions = []tea.ProgramOption{tea.WithAltScreen()}

// loadConfig layers preset, config file and explicit flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		fileCfg, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = int(interval.Milliseconds())
	}
	if flags.Changed("no-loop") {
		cfg.Loop = !noLoop
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func playStream(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := series.DecodeFile(input)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputName(), err)
	}
	slog.Debug("decoded stream", "input", inputName(), "bodies", st.BodyCount(), "frames", st.FrameCount())

	return play(cmd, cfg, st, inputName())
}

func replayRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runs := storage.New(dataDir)
	meta, err := runs.Load(args[0])
	if err != nil {
		return err
	}
	st, err := runs.LoadSeries(meta.ID)
	if err != nil {
		return err
	}

	return play(cmd, cfg, st, meta.Name)
}

func play(cmd *cobra.Command, cfg *config.Config, st *series.Store, title string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if save {
		return exportGIF(ctx, cmd, cfg, st)
	}

	if st.FrameCount() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no frames to play")
		return nil
	}

	playCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := viz.NewTerminal(title, cfg.VizOptions(), st.FrameCount(), cancel, programOptions...)
	player := playback.New(st,
		playback.WithInterval(cfg.Interval()),
		playback.WithLoop(cfg.Loop),
		playback.WithObserver(logWrap(st.FrameCount())),
	)

	if err := player.Run(playCtx, present(term, st.Radii())); err != nil {
		term.Close()
		_ = term.Finalize("")
		return err
	}
	if ctx.Err() != nil {
		// A signal stopped playback; the view is still up.
		term.Close()
	}
	// Otherwise the user quit, or a single pass ended and the last frame
	// stays up until they do.
	return term.Finalize("")
}

// exportGIF plays the series once, as fast as frames can be captured, and
// writes the animation.
func exportGIF(ctx context.Context, cmd *cobra.Command, cfg *config.Config, st *series.Store) error {
	rec := viz.NewRecorder(cfg.VizOptions(), cfg.ExportFPS)
	player := playback.New(st, playback.WithInterval(0), playback.WithLoop(false))

	if err := player.Run(ctx, present(rec, st.Radii())); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("export interrupted after %d frames: %w", rec.Frames(), err)
	}
	if err := rec.Finalize(cfg.Output); err != nil {
		if errors.Is(err, viz.ErrNoFrames) {
			return fmt.Errorf("nothing to export: %w", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s (%d fps)\n", rec.Frames(), cfg.Output, cfg.ExportFPS)
	return nil
}

func present(r viz.Renderer, radii []float64) playback.FrameFunc {
	return func(_ int, f series.Frame) error {
		return r.Present(f, radii)
	}
}

func logWrap(total int) func(int) {
	return func(i int) {
		if i == total-1 {
			slog.Debug("playback: reached last frame", "frames", total)
		}
	}
}

func inputName() string {
	if input == "" || input == "-" {
		return "stdin"
	}
	return filepath.Base(input)
}
