package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/midbel/tabcharts"
	"github.com/midbel/tabcharts/config"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [chart...]",
	Short: "print the aggregated values of charts",
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	jobs, err := prepare(cmd.Context(), cfg, args)
	if err != nil {
		return err
	}
	var (
		title = color.New(color.Bold)
		w     = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	)
	defer w.Flush()
	for _, j := range jobs {
		title.Fprintf(w, "%s (%s)\n", j.Id, j.Kind)
		if err := inspect(w, j.Chart, j.chart.Records()); err != nil {
			return fmt.Errorf("%s: %w", j.Id, err)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func inspect(w io.Writer, c config.Chart, records []charts.Record) error {
	switch c.Kind {
	case config.KindBar, config.KindHeatmap:
		red, err := charts.ParseReducer(c.Reducer)
		if err != nil {
			return err
		}
		var bs charts.Buckets
		if c.Kind == config.KindBar {
			bs, err = charts.Aggregate(records, charts.TextField(c.Key), charts.NumberField(c.Value), red)
		} else {
			bs, err = charts.AggregatePair(records, charts.TextField(c.Outer), charts.TextField(c.Inner), charts.NumberField(c.Value), red)
		}
		if err != nil {
			return err
		}
		for _, b := range bs {
			fmt.Fprintf(w, "%s\t%d\t%g\n", b.Key, b.Count, b.Value)
		}
	case config.KindScatter:
		for _, f := range []string{c.X, c.Y} {
			min, max, ok, err := charts.Extent(records, charts.NumberField(f))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(w, "%s\tempty\n", f)
				continue
			}
			fmt.Fprintf(w, "%s\t[%g, %g]\n", f, min, max)
		}
	default:
		return fmt.Errorf("%s: unknown chart kind", c.Kind)
	}
	return nil
}
