package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NicheScout/internal/analysis"
	"NicheScout/internal/cache"
	"NicheScout/internal/catalog"
	"NicheScout/internal/config"
	"NicheScout/internal/model"
	"NicheScout/internal/report"
	"NicheScout/internal/review"
	"NicheScout/internal/sample"
	"NicheScout/internal/search"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] NicheScout starting...")

	keyword := sample.Keyword
	if len(os.Args) > 1 {
		keyword = os.Args[1]
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	// Without a Keepa key there is nothing to fetch; show the canned
	// demo data set instead of failing.
	if cfg.Keepa.APIKey == "" {
		log.Println("[WARN] keepa.api_key not set, showing sample data")
		runDemo()
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init cache
	store, err := cache.Open(cfg.Cache.Path, cfg.Cache.MaxSizeMB)
	if err != nil {
		log.Fatalf("[FATAL] open cache: %v", err)
	}
	defer store.Close()

	janitor := cache.NewJanitor(store)
	if err := janitor.Register(cfg.Cache.SweepCron); err != nil {
		log.Fatalf("[FATAL] register cache sweep: %v", err)
	}
	janitor.Start()
	defer janitor.Stop()

	// Init keyword resolver
	var resolver search.Resolver
	if cfg.Rainforest.APIKey != "" {
		resolver = search.NewRainforestResolver(cfg.Rainforest.APIKey, cfg.Rainforest.Domain)
	} else {
		log.Println("[WARN] rainforest.api_key not set, using static identifier table")
	}

	// Init catalog provider
	provider := catalog.NewKeepaClient("", cfg.Keepa.APIKey, cfg.Keepa.Domain,
		cfg.Keepa.StatsDays, time.Duration(cfg.Keepa.TimeoutSeconds)*time.Second)
	log.Printf("[INFO] catalog provider: %s", provider.Name())

	orch := search.NewOrchestrator(resolver, provider, store, cfg.Rainforest.MaxResults)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, err := orch.Search(ctx, keyword)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRateLimited):
			log.Fatalf("[FATAL] rate limited upstream, wait for token refill and retry: %v", err)
		case errors.Is(err, catalog.ErrTimeout):
			log.Fatalf("[FATAL] upstream timed out, retry or raise keepa.timeout_seconds: %v", err)
		default:
			log.Fatalf("[FATAL] search failed: %v", err)
		}
	}

	fmt.Println(report.FormatSearchResult(&result))
	if len(result.Rows) > 0 {
		fmt.Println(report.FormatBreakdown(&result.Rows[0]))
	}

	// Review analysis for the top candidate, when both keys are present.
	if len(result.Rows) > 0 && cfg.Rainforest.APIKey != "" && cfg.Claude.APIKey != "" {
		top := result.Rows[0]
		collector := review.NewCollector(cfg.Rainforest.APIKey, cfg.Rainforest.Domain)
		reviews, err := collector.Collect(ctx, top.Facts.ASIN, 50)
		if err != nil {
			log.Printf("[WARN] review collection failed: %v", err)
		} else {
			analyzer := analysis.NewAnalyzer(cfg.Claude.APIKey, cfg.Claude.Model)
			result, err := analyzer.Analyze(ctx, top.Facts.Title, reviews)
			if err != nil {
				log.Printf("[WARN] review analysis failed: %v", err)
			} else {
				fmt.Println(report.FormatAnalysis(top.Facts.Title, result))
			}
		}
	}

	if stats, err := store.GetStats(); err == nil {
		fmt.Println(report.FormatCacheStats(stats))
	}

	log.Println("[INFO] NicheScout done")
}

// runDemo prints the canned yoga-mat data set.
func runDemo() {
	demo := model.SearchResult{Keyword: sample.Keyword, Rows: sample.Rows()}
	fmt.Println(report.FormatSearchResult(&demo))
	if len(demo.Rows) > 0 {
		top := demo.Rows[0]
		fmt.Println(report.FormatBreakdown(&top))
		fmt.Println(report.FormatAnalysis(top.Facts.Title, sample.DemoAnalysis()))
	}
}
