package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	lib "github.com/theoremus-urban-solutions/alert-runs"
	"github.com/theoremus-urban-solutions/alert-runs/config"
	"github.com/theoremus-urban-solutions/alert-runs/formatter"
	"github.com/theoremus-urban-solutions/alert-runs/samples"
	"github.com/theoremus-urban-solutions/alert-runs/validate"
)

func main() {
	mode := flag.String("mode", "summarise", "summarise|validate|averages|samples")
	configPath := flag.String("config", "", "settings file (default config/settings.yaml)")
	cityName := flag.String("city", "", "city tag or name from config.cities[]")
	format := flag.String("format", "text", "stdout format for summarise: csv|json|xml|text")
	out := flag.String("out", "", "output path (overrides config)")
	rows := flag.Int("rows", 0, "samples: max rows per file (overrides config)")
	count := flag.Int("count", 0, "samples: number of files (overrides config)")
	seed := flag.Int64("seed", 0, "samples: seed (overrides config)")
	outDir := flag.String("outdir", "", "samples: output directory (overrides config)")
	flag.Parse()

	lib.InitLogging()
	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		panic(err)
	}
	batchID := lib.NewBatchID()
	log.Printf("[%s] mode=%s", batchID, *mode)

	switch *mode {
	case "summarise", "summarize":
		city, files, err := resolveCity(*cityName, flag.Args())
		if err != nil {
			panic(err)
		}
		s, err := lib.NewSummariser(city, batchID)
		if err != nil {
			panic(err)
		}
		table, err := s.SummariseFiles(files)
		if err != nil {
			panic(err)
		}
		dest := city.OutputPath()
		if *out != "" {
			dest = *out
		}
		rc := lib.NewReportCache(table, city.Tag, batchID, time.Now().Unix())
		if err := rc.WriteFile(lib.FormatCSV, dest); err != nil {
			panic(err)
		}
		log.Printf("[%s] wrote %s (%d runs)", batchID, dest, len(table.Runs))

		buf, err := rc.Get(*format)
		if err != nil {
			panic(err)
		}
		fmt.Print(string(buf))

	case "validate":
		rc := 0
		for _, p := range validationTargets(flag.Args()) {
			rep, err := validate.ValidateFile(p)
			if err != nil {
				fmt.Printf("[FAIL] %s: %v\n", p, err)
				rc = 1
				continue
			}
			fmt.Println(rep.String())
			if !rep.OK() {
				rc = 1
			}
		}
		os.Exit(rc)

	case "averages":
		avgs, err := lib.ComputeAverages(config.Config.Cities)
		if err != nil {
			panic(err)
		}
		dest := config.Config.Summaries.AveragesOut
		if *out != "" {
			dest = *out
		}
		if err := formatter.WriteAveragesCSVFile(dest, avgs); err != nil {
			panic(err)
		}
		log.Printf("[%s] wrote %s", batchID, dest)
		for _, a := range avgs {
			fmt.Printf("%s: alerts %.1f, train %.1f, tram %.1f, bus %.1f, resolved %.1f%%\n",
				a.City, a.Alerts, a.Train, a.Tram, a.Bus, a.ResolvedPct)
		}

	case "samples":
		city, files, err := resolveCity(*cityName, flag.Args())
		if err != nil {
			panic(err)
		}
		opts := samples.Options{
			City:   city.Tag,
			Rows:   config.Config.Samples.Rows,
			Count:  config.Config.Samples.Count,
			OutDir: config.Config.Samples.OutDir,
			Seed:   config.Config.Samples.Seed,
		}
		if *rows > 0 {
			opts.Rows = *rows
		}
		if *count > 0 {
			opts.Count = *count
		}
		if *seed != 0 {
			opts.Seed = *seed
		}
		if *outDir != "" {
			opts.OutDir = *outDir
		}
		if _, err := samples.Make(files, opts); err != nil {
			panic(err)
		}

	default:
		panic("unknown mode")
	}
}
