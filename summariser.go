// Package alertruns wires configuration, route indexes, classification and
// resolution into the batch operations run by the alert-runs command.
package alertruns

import (
	"fmt"
	"log"

	"github.com/theoremus-urban-solutions/alert-runs/classify"
	"github.com/theoremus-urban-solutions/alert-runs/config"
	"github.com/theoremus-urban-solutions/alert-runs/export"
	"github.com/theoremus-urban-solutions/alert-runs/formatter"
	"github.com/theoremus-urban-solutions/alert-runs/gtfs"
	"github.com/theoremus-urban-solutions/alert-runs/resolve"
	"github.com/theoremus-urban-solutions/alert-runs/summary"
)

// Summariser summarises the runs of one city.
type Summariser struct {
	City       config.City
	Index      *gtfs.RouteIndex
	Classifier *classify.Classifier
	Resolver   resolve.Resolver
	BatchID    string
}

// NewSummariser builds the classifier and resolver for city, loading its route
// index when the city resolves against one.
func NewSummariser(city config.City, batchID string) (*Summariser, error) {
	var index *gtfs.RouteIndex
	if city.Resolver == resolve.KindRouteIndex {
		var err error
		index, err = loadRouteIndex(city)
		if err != nil {
			return nil, err
		}
		short, ids, longs := index.Stats()
		log.Printf("[%s] %s route index: %d short names, %d route ids, %d long names",
			batchID, city.Tag, short, ids, longs)
	}
	r, err := resolve.New(city.Resolver, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", city.Tag, err)
	}
	return &Summariser{
		City:       city,
		Index:      index,
		Classifier: classify.ForCity(city.Tag),
		Resolver:   r,
		BatchID:    batchID,
	}, nil
}

func loadRouteIndex(city config.City) (*gtfs.RouteIndex, error) {
	return gtfs.LoadRoutesCached(city.RoutesPath, city.RouteIndexCache)
}

// SummariseRun summarises one loaded run and logs its data-quality warnings.
func (s *Summariser) SummariseRun(run *export.Run) summary.RunSummary {
	warn := summary.NewWarningAggregator()
	row := summary.Summarize(run.ID, run.Records(), s.Classifier, s.Resolver, summary.Options{
		UseRunIDTimestamp: s.City.UseRunIDTimestamp(),
		TZOffset:          s.City.Offset(),
		Warnings:          warn,
	})
	warn.LogAll(run.ID, s.City.Tag)
	log.Printf("[%s] %s: %d alerts (train %d, tram %d, bus %d), %s%% routes resolved",
		s.BatchID, run.ID, row.Alerts, row.Train, row.Tram, row.Bus, formatter.FormatPercent(row.ResolvedPct))
	return row
}

// SummariseFiles reads every file in order and returns the batch table. A file
// that cannot be read fails the whole batch.
func (s *Summariser) SummariseFiles(files []string) (summary.Table, error) {
	rows := make([]summary.RunSummary, 0, len(files))
	for _, f := range files {
		run, err := export.ReadRun(f)
		if err != nil {
			return summary.Table{}, err
		}
		rows = append(rows, s.SummariseRun(run))
	}
	return summary.Aggregate(rows)
}

// ComputeAverages reads the summary table of every city and returns one row of
// per-run means per city, in the given order.
func ComputeAverages(cities []config.City) ([]summary.CityAverage, error) {
	out := make([]summary.CityAverage, 0, len(cities))
	for _, c := range cities {
		rows, err := formatter.ReadSummariesFile(c.OutputPath())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		avg, err := summary.Averages(c.Name, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, avg)
	}
	return out, nil
}
