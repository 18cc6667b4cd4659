package summary

import (
	"fmt"

	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

// CityAverage holds per-run means for one city's summary table.
type CityAverage struct {
	City        string  `json:"city"`
	Alerts      float64 `json:"avg_alerts_processed"`
	Train       float64 `json:"avg_train_alerts"`
	Tram        float64 `json:"avg_tram_light_rail_alerts"`
	Bus         float64 `json:"avg_bus_alerts"`
	ResolvedPct float64 `json:"avg_route_names_resolved_pct"`
}

// Averages computes the mean of every numeric column over the run rows of a
// summary table, rounded to one decimal place. A totals row is skipped.
func Averages(city string, rows []RunSummary) (CityAverage, error) {
	avg := CityAverage{City: city}
	n := 0
	for _, r := range rows {
		if r.RunID == TotalRunID {
			continue
		}
		n++
		avg.Alerts += float64(r.Alerts)
		avg.Train += float64(r.Train)
		avg.Tram += float64(r.Tram)
		avg.Bus += float64(r.Bus)
		avg.ResolvedPct += r.ResolvedPct
	}
	if n == 0 {
		return CityAverage{}, fmt.Errorf("%s: %w", city, ErrEmptyBatch)
	}
	div := float64(n)
	avg.Alerts = utils.Round1(avg.Alerts / div)
	avg.Train = utils.Round1(avg.Train / div)
	avg.Tram = utils.Round1(avg.Tram / div)
	avg.Bus = utils.Round1(avg.Bus / div)
	avg.ResolvedPct = utils.Round1(avg.ResolvedPct / div)
	return avg, nil
}
