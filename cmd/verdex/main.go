package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/verdex-org/verdex/config"
	"github.com/verdex-org/verdex/engine"
	"github.com/verdex-org/verdex/helpers"
	"github.com/verdex-org/verdex/server"
)

// ============================================================================
// VERDEX CLI — trait analytics for plant catalogs
// ============================================================================

const version = "0.4.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	dataPath := flag.String("data", "", "Path to plant catalog CSV")
	serve := flag.Bool("serve", false, "Serve the HTTP API")
	configPath := flag.String("config", "verdex.yaml", "Path to YAML config (serve mode)")
	op := flag.String("op", "", "Engine operation to run offline")

	plants := flag.String("plants", "", "Plant ids, comma-separated (filter, or compare/radar selection)")
	rootSystem := flag.String("root-system", "", "Root type filter, comma-separated")
	rootDepth := flag.String("root-depth", "", "Root depth filter, comma-separated")
	growthForm := flag.String("growth-form", "", "Growth form filter, comma-separated")
	stressTolerance := flag.String("stress-tolerance", "", "Stress tolerance filter, comma-separated")
	vegetable := flag.String("vegetable", "", "Vegetable filter: Yes, No")
	usage := flag.String("usage", "", "Usage tag filter, comma-separated")

	q := flag.String("q", "", "Search substring (plant-search)")
	category := flag.String("category", "", "Category key (plants-by-category)")
	plant := flag.String("plant", "", "Target plant id (similar)")
	mode := flag.String("mode", "", "Cluster focus: morphology, stress, usage, combined")
	k := flag.Int("k", 0, "Cluster partition count")

	format := flag.String("format", "json", "Output format: json, pretty")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Verdex — trait analytics for plant catalogs

Usage:
  verdex --data plants.csv --serve
  verdex --data plants.csv --serve --config verdex.yaml
  verdex --data plants.csv --op sunburst --growth-form Tree,Shrub --format pretty
  verdex --data plants.csv --op similar --plant Mango --out similar.json

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  VERDEX_*    Override any config key in serve mode
              (VERDEX_LISTEN, VERDEX_DOMAIN, VERDEX_DATA_FILE, ...)

Operations:
  %s

Examples:
  # Serve the API in dev mode on :8080
  verdex --data plants.csv --serve

  # One-shot: cluster herbs by usage into 3 groups
  verdex --data plants.csv --op clusters --growth-form Herb --mode usage --k 3

  # Compare two plants, pretty-printed to a file
  verdex --data plants.csv --op compare --plants Mango,Neem --format pretty --out cmp.json
`, strings.Join(engine.Ops(), ", "))
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("verdex %s\n", version)
		os.Exit(0)
	}

	// ── Serve mode ────────────────────────────────────────────────────────
	if *serve {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fatalf("Failed to load config: %v", err)
		}
		if *dataPath != "" {
			cfg.DataFile = *dataPath
		}
		if err := cfg.Validate(); err != nil {
			fatalf("Invalid config: %v", err)
		}

		cat, err := helpers.LoadCatalog(cfg.DataFile)
		if err != nil {
			fatalf("Failed to load catalog: %v", err)
		}
		log.Printf("🌱 Verdex: %s plants loaded from %s", engine.FormatInt(cat.Len()), cfg.DataFile)

		ectx := engine.NewContext(cat,
			engine.WithDefaultClusterK(cfg.DefaultK),
			engine.WithClusterCache(cfg.ClusterCache),
		)

		logger, err := server.NewLogger(cfg.LogLevel, cfg.DevMode)
		if err != nil {
			fatalf("Failed to build logger: %v", err)
		}
		defer logger.Sync()

		if err := server.New(cfg, ectx, logger).Run(); err != nil {
			fatalf("Server failed: %v", err)
		}
		return
	}

	// ── One-shot mode ─────────────────────────────────────────────────────
	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --data is required")
		flag.Usage()
		os.Exit(1)
	}
	if *op == "" {
		fmt.Fprintln(os.Stderr, "Error: either --serve or --op is required")
		flag.Usage()
		os.Exit(1)
	}

	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	cat, err := helpers.LoadCatalog(*dataPath)
	if err != nil {
		fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("🌱 Verdex: %s plants loaded from %s", engine.FormatInt(cat.Len()), *dataPath)

	ectx := engine.NewContext(cat)

	req := engine.Request{
		Op: *op,
		Query: engine.Query{
			Plants:           csvList(*plants),
			RootTypes:        csvList(*rootSystem),
			RootDepths:       csvList(*rootDepth),
			GrowthForms:      csvList(*growthForm),
			StressTolerances: csvList(*stressTolerance),
			Vegetable:        csvList(*vegetable),
			Usage:            csvList(*usage),
		},
		Q:        *q,
		Category: *category,
		Plant:    *plant,
		Plants:   csvList(*plants),
		Mode:     *mode,
		K:        *k,
	}

	result, err := engine.Execute(ectx, req)
	if err != nil {
		fatalf("Execution failed: %v", err)
	}

	writeJSON(writer, result, *format)
	if *outFile != "" {
		log.Printf("📄 Result written to %s", *outFile)
	}
}

// ============================================================================
// HELPERS
// ============================================================================

// csvList splits a comma-separated flag value, dropping blanks.
func csvList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
