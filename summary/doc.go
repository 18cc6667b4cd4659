// Package summary turns the alerts of one collection run into a summary row and
// combines run rows into a batch table with a totals row.
//
// # Overview
//
// Per run, every alert's primary text is classified into one mode and its route
// is checked with the city's resolver:
//
//	c := classify.ForCity(city.Tag)
//	r, _ := resolve.New(city.Resolver, index)
//	row := summary.Summarize(run.ID, run.Records(), c, r, summary.Options{
//	    UseRunIDTimestamp: city.UseRunIDTimestamp(),
//	    TZOffset:          city.TZOffset,
//	})
//
// The per-mode counts always add up to the alert count; Summarize panics
// otherwise, since that can only happen through a classifier defect.
//
// # Batch table
//
// Aggregate appends a "Total" row whose counts are sums and whose resolved
// percentage is the plain mean of per-run percentages. Reference tables were
// produced that way, so it is not weighted by alert count.
//
// Averages reduces a finished table to one row of per-run means, used for the
// cross-city comparison table.
package summary
