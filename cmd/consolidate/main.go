// Command consolidate fetches the full champion document from Data Dragon
// and writes it as the bundled array document served by the champion catalog.
// Runs offline at build time, the catalog never fetches champions live.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"riftbook/ddragon"
	"riftbook/pkg/logger"
	"riftbook/pkg/models/champion"
	"riftbook/riot/requests"

	"github.com/goccy/go-json"
)

// championFullDocument is the keyed object shape of championFull.json.
type championFullDocument struct {
	Version string                       `json:"version"`
	Data    map[string]champion.Champion `json:"data"`
}

func main() {
	output := flag.String("output", "data/champions-full.json", "path of the consolidated document")
	language := flag.String("lang", ddragon.DefaultLanguage, "language of the champion texts")
	flag.Parse()

	zlog := logger.New()

	req := requests.NewClient(&requests.ClientDeps{
		Logger: zlog,
	})

	loader := ddragon.NewLoader(&ddragon.LoaderDeps{
		Requests: req,
		Logger:   zlog,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	version := loader.LatestVersion(ctx)
	url := fmt.Sprintf("%s/cdn/%s/data/%s/championFull.json",
		ddragon.DefaultBaseURL, version, *language)

	var doc championFullDocument
	if err := req.GetJSON(ctx, url, &doc, requests.Options{}); err != nil {
		log.Fatalf("Couldn't fetch the champion document: %v", err)
	}

	champions := consolidate(doc.Data)

	data, err := json.MarshalIndent(champions, "", "  ")
	if err != nil {
		log.Fatalf("Couldn't marshal the consolidated document: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		log.Fatalf("Couldn't create the output directory: %v", err)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("Couldn't write the consolidated document: %v", err)
	}

	zlog.Info().
		Str("version", version).
		Str("output", *output).
		Int("champions", len(champions)).
		Msg("champion document consolidated")
}

// consolidate flattens the keyed document into an array ordered by the
// numeric champion key.
func consolidate(data map[string]champion.Champion) []champion.Champion {
	champions := make([]champion.Champion, 0, len(data))
	for _, entry := range data {
		champions = append(champions, entry)
	}

	sort.Slice(champions, func(i, j int) bool {
		return numericKey(champions[i].ID) < numericKey(champions[j].ID)
	})
	return champions
}

func numericKey(key string) int {
	parsed, err := strconv.Atoi(key)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return parsed
}
