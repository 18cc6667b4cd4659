/*
Package gtfs builds the static route index used by route resolution.

The index is built once per batch from a GTFS routes.txt (plain file or inside a
GTFS zip) and is read-only afterwards. All lookups are on normalised values
(trimmed, lower-cased).

# Basic Usage

Load from the configured path:

	index, err := gtfs.LoadRoutes(city.RoutesPath)
	if err != nil {
	    log.Fatal(err)
	}

	index.HasShortName("t1")
	index.HasRouteID("IWLR-191")
	index.LongNameContains("blue mountains")

Load from io.Reader:

	file, _ := os.Open("routes.txt")
	defer file.Close()
	index, err := gtfs.NewRouteIndexFromReader(file)

# Caching

A prepared index can be serialised with SerializeIndexToFile and reused by later
batches through DeserializeIndexFromFile, skipping the CSV parse.
*/
package gtfs
