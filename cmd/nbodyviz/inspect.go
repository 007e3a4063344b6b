package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/nbodyviz/internal/export"
	"github.com/san-kum/nbodyviz/internal/series"
	"github.com/san-kum/nbodyviz/internal/viz"
)

func infoStream(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := series.DecodeFile(input)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputName(), err)
	}

	out := cmd.OutOrStdout()
	if jsonOut != "" {
		if err := export.WriteJSON(jsonOut, out, inputName(), st); err != nil {
			return err
		}
		slog.Debug("info: wrote json", "path", jsonOut)
		if jsonOut == "-" {
			// stdout carries only the dump
			return nil
		}
	}

	fmt.Fprintf(out, "input: %s\n", inputName())
	fmt.Fprintf(out, "bodies: %d\n", st.BodyCount())
	fmt.Fprintf(out, "frames: %d\n", st.FrameCount())
	if st.FrameCount() == 0 || st.BodyCount() == 0 {
		return nil
	}

	radii := st.Radii()
	rMin, rMax := radii[0], radii[0]
	for _, r := range radii {
		rMin = math.Min(rMin, r)
		rMax = math.Max(rMax, r)
	}
	lo, hi := st.Bounds()
	fmt.Fprintf(out, "radius: %.3g .. %.3g\n", rMin, rMax)
	fmt.Fprintf(out, "extent: x [%.1f, %.1f]  y [%.1f, %.1f]  z [%.1f, %.1f]\n", lo.X, hi.X, lo.Y, hi.Y, lo.Z, hi.Z)

	outside := 0
	for i := 0; i < st.FrameCount(); i++ {
		f, _ := st.Frame(i)
		for _, p := range f {
			if math.Abs(p.X) > cfg.Bounds || math.Abs(p.Y) > cfg.Bounds || math.Abs(p.Z) > cfg.Bounds {
				outside++
			}
		}
	}
	total := st.FrameCount() * st.BodyCount()
	fmt.Fprintf(out, "outside ±%.0f: %d of %d positions (%.1f%%)\n\n", cfg.Bounds, outside, total, 100*float64(outside)/float64(total))

	spreads := make([]float64, st.FrameCount())
	for i := range spreads {
		spreads[i] = st.Spread(i)
	}
	if len(spreads) > 1 {
		graph := asciigraph.Plot(spreads,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("spread (rms distance from centroid) vs frame"),
		)
		fmt.Fprintln(out, graph)
	}

	if svgOut != "" {
		th, _ := viz.GetTheme(cfg.Theme)
		if err := export.WriteFile(svgOut, export.LineChartToSVG(spreads, 640, 240, th)); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nchart written to %s\n", svgOut)
	}
	return nil
}

func snapshotFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := series.DecodeFile(input)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputName(), err)
	}

	f, err := st.Frame(frameIndex)
	if err != nil {
		return err
	}

	opts := cfg.VizOptions()
	canvas := viz.NewCanvas(opts.Cols, opts.Rows)
	viz.NewScene(opts).Rasterize(canvas, f, st.Radii())

	if svgOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), canvas.String())
		return nil
	}
	if err := export.WriteFile(svgOut, export.CanvasToSVG(canvas, 4, opts.Theme)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "frame %d written to %s\n", frameIndex, svgOut)
	return nil
}
