package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/nbodyviz/internal/playback"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	verbose    bool
	// Playback
	input    string
	output   string
	save     bool
	noLoop   bool
	interval time.Duration
	// Inspection
	frameIndex int
	svgOut     string
	jsonOut    string
)

// main wires the nbodyviz commands. With no subcommand it reads a stream and
// plays it; -s exports the animation instead.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "nbodyviz",
		Short: "animate n-body simulation output",
		Long: `nbodyviz reads "<num_bodies> <seconds>" followed by one "x y z radius"
line per body per second, and plays the bodies back as a looping 3D scatter.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              playStream,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nbodyviz", "run archive directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a view preset")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	addPlayFlags(rootCmd)
	addInputFlag(rootCmd)

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "summarize a stream",
		Args:  cobra.NoArgs,
		RunE:  infoStream,
	}
	addInputFlag(infoCmd)
	infoCmd.Flags().StringVar(&svgOut, "svg", "", "also write the spread chart as svg")
	infoCmd.Flags().StringVar(&jsonOut, "json", "", "also dump the decoded series as json; - writes only the json to stdout")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame as svg (or text when no output is given)",
		Args:  cobra.NoArgs,
		RunE:  snapshotFrame,
	}
	addInputFlag(snapshotCmd)
	snapshotCmd.Flags().IntVar(&frameIndex, "frame", 0, "frame index")
	snapshotCmd.Flags().StringVarP(&svgOut, "out", "o", "", "svg output path")

	importCmd := &cobra.Command{
		Use:   "import [name]",
		Short: "archive a stream for later replay",
		Args:  cobra.MaximumNArgs(1),
		RunE:  importStream,
	}
	addInputFlag(importCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "play an archived run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}
	addPlayFlags(replayCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list view presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(infoCmd, snapshotCmd, importCmd, listCmd, replayCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&save, "save", "s", false, "save the animation to a file; display otherwise")
	cmd.Flags().StringVarP(&output, "output", "o", "", "animation output path (default from config)")
	cmd.Flags().DurationVar(&interval, "interval", playback.DefaultInterval, "live time between frames")
	cmd.Flags().BoolVar(&noLoop, "no-loop", false, "play once instead of looping")
}

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&input, "input", "i", "-", "stream file, - for stdin")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
