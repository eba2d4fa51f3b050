package main

import (
	"context"
	"fmt"

	"github.com/midbel/tabcharts"
	"github.com/midbel/tabcharts/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type job struct {
	config.Chart
	chart    *charts.Chart
	renderer charts.Renderer
}

func selectCharts(cfg config.File, ids []string) ([]config.Chart, error) {
	if len(ids) == 0 {
		return cfg.Charts, nil
	}
	var list []config.Chart
	for _, id := range ids {
		c, ok := cfg.Chart(id)
		if !ok {
			return nil, fmt.Errorf("%s: chart not defined", id)
		}
		list = append(list, c)
	}
	return list, nil
}

// prepare loads the dataset of each selected chart. Every chart gets its own
// copy of the records. If one load fails, none of the charts is returned.
func prepare(ctx context.Context, cfg config.File, ids []string) ([]job, error) {
	list, err := selectCharts(cfg, ids)
	if err != nil {
		return nil, err
	}
	jobs := make([]job, len(list))
	for i, c := range list {
		rdr, err := c.Renderer()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Id, err)
		}
		jobs[i] = job{
			Chart:    c,
			chart:    charts.New(c.Id, c.Options(cfg.Options)),
			renderer: rdr,
		}
	}

	grp, ctx := errgroup.WithContext(ctx)
	for i := range jobs {
		j := jobs[i]
		grp.Go(func() error {
			var (
				set = cfg.Datasets[j.Dataset]
				log = logger.WithFields(logrus.Fields{
					"chart":   j.Id,
					"dataset": j.Dataset,
					"path":    set.Path,
				})
			)
			ld, err := set.Loader(j.Dataset)
			if err != nil {
				return err
			}
			log.Debug("loading dataset")
			if err := j.chart.Load(ctx, ld, set.Path); err != nil {
				return err
			}
			log.WithField("rows", len(j.chart.Records())).Info("dataset loaded")
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return jobs, nil
}
