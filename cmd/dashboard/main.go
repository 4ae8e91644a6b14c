package main

import (
	"log"
	"os"
	"time"

	"sales-insights/internal/application/insights"
	"sales-insights/internal/infra/memory"
	"sales-insights/internal/infrastructure/config"
	"sales-insights/internal/infrastructure/dataset"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		log.Fatalf("CRITICAL: load config failed: %v", err)
	}
	log.Printf("configuration loaded (dataset=%q salesperson=%q)", cfg.Dataset.Path, cfg.Report.Salesperson)

	clock := time.Now
	if cfg.Report.Now != "" {
		pinned, err := time.Parse(time.RFC3339, cfg.Report.Now)
		if err != nil {
			log.Fatalf("invalid report.now value %q: %v", cfg.Report.Now, err)
		}
		clock = func() time.Time { return pinned }
		log.Printf("reference clock pinned to %s", pinned.Format(time.RFC3339))
	}

	store := memory.NewStore()
	if cfg.Dataset.Path != "" {
		snap, err := dataset.Load(cfg.Dataset.Path)
		if err != nil {
			log.Fatalf("load dataset: %v", err)
		}
		store.Replace(snap)
		log.Printf("dataset loaded (%d clients, %d orders, %d opportunities, %d activities, %d quotas)",
			len(snap.Clients), len(snap.Orders), len(snap.Opportunities), len(snap.Activities), len(snap.Quotas))
	} else {
		log.Printf("no dataset configured; generating sample data")
		store.Replace(sampleSnapshot(clock()))
	}

	if cfg.Report.Salesperson == "" {
		if people := store.Salespeople(); len(people) > 0 {
			log.Printf("admin view over all records (salespeople: %v)", people)
		}
	}

	uc := insights.NewUseCase(clock)
	snap := store.SnapshotFor(cfg.Report.Salesperson)
	if err := render(os.Stdout, uc, snap); err != nil {
		log.Fatalf("render report: %v", err)
	}
}
