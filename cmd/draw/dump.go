package main

import (
	"io"
	"os"

	"github.com/midbel/tabcharts"
	"github.com/midbel/tabcharts/draw"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [chart...]",
	Short: "write the primitives of charts as msgpack",
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	jobs, err := prepare(cmd.Context(), cfg, args)
	if err != nil {
		return err
	}
	var frames []charts.Frame
	for _, j := range jobs {
		canvas := charts.NewCanvas()
		if err := j.chart.Render(canvas, j.renderer); err != nil {
			return err
		}
		f, _ := canvas.Frame()
		logger.WithFields(logrus.Fields{
			"chart":      j.Id,
			"primitives": len(f.Primitives),
		}).Debug("chart rendered")
		frames = append(frames, f)
	}

	var w io.Writer = cmd.OutOrStdout()
	if file, _ := cmd.Flags().GetString("output"); file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return draw.Dump(w, frames...)
}
