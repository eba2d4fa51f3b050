package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/midbel/tabcharts/draw"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [chart...]",
	Short: "render charts to svg files",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("dir", "d", "", "directory where svg files are written")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	jobs, err := prepare(cmd.Context(), cfg, args)
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")
	done := color.New(color.FgGreen)
	for _, j := range jobs {
		sf := draw.NewSVG()
		if err := j.chart.Render(sf, j.renderer); err != nil {
			return err
		}
		file := outputFile(j.Output, j.Id, dir)
		if err := writeSVG(file, sf); err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"chart":  j.Id,
			"kind":   j.Kind,
			"output": file,
		}).Debug("chart rendered")
		done.Fprintf(cmd.OutOrStdout(), "%-16s", j.Id)
		fmt.Fprintf(cmd.OutOrStdout(), " %s\n", file)
	}
	return nil
}

func outputFile(output, id, dir string) string {
	if output == "" {
		output = id + ".svg"
	}
	if dir != "" {
		output = filepath.Join(dir, filepath.Base(output))
	}
	return output
}

func writeSVG(file string, sf *draw.SVG) error {
	if dir := filepath.Dir(file); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err := sf.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
