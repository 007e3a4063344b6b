package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/nbodyviz/internal/config"
	"github.com/san-kum/nbodyviz/internal/series"
	"github.com/san-kum/nbodyviz/internal/storage"
)

func importStream(cmd *cobra.Command, args []string) error {
	st, err := series.DecodeFile(input)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputName(), err)
	}

	name := strings.TrimSuffix(inputName(), filepath.Ext(inputName()))
	if len(args) > 0 {
		name = args[0]
	}

	runs := storage.New(dataDir)
	if err := runs.Init(); err != nil {
		return err
	}
	runID, err := runs.Save(name, inputName(), st)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run id: %s\n", runID)
	fmt.Fprintf(cmd.OutOrStdout(), "bodies: %d\n", st.BodyCount())
	fmt.Fprintf(cmd.OutOrStdout(), "frames: %d\n", st.FrameCount())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tBODIES\tFRAMES\tSOURCE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Bodies,
			run.Frames,
			run.Source,
		)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBOUNDS\tELEVATION\tAZIMUTH")
	for _, name := range config.ListPresets() {
		v := config.Presets[name]
		fmt.Fprintf(w, "%s\t±%.0f\t%.0f°\t%.0f°\n", name, v.Bounds, v.Elevation, v.Azimuth)
	}
	return w.Flush()
}
