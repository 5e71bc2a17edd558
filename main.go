package main

import (
	"fmt"
	"os"

	"match-night/internal/config"
	"match-night/internal/events"
	"match-night/internal/ledger"
	"match-night/internal/matching"
	model "match-night/internal/models"
	"match-night/internal/repository"
	"match-night/internal/server"
	"match-night/internal/session"
	"match-night/internal/snapshot"
	"match-night/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	repo := repository.NewMemoryRepo()

	prepopulateItems(repo)

	publisher := newPublisher(cfg.Events)

	ledgerSvc := ledger.NewService(repo, publisher, cfg.Auction.MinIncrement)
	sessionSvc := session.NewService(repo, cfg.Auction.StartingBalance, cfg.Scoring.LikeCap)
	pipeline := matching.NewPipeline(repo, publisher, cfg.Scoring.TopN, cfg.Scoring.ScoreFloor, matching.Policy(cfg.Scoring.Policy))
	materializer := snapshot.NewMaterializer(repo, publisher, cfg.Snapshot.TTL())

	router := server.SetupRouter(ledgerSvc, sessionSvc, pipeline, materializer)

	fmt.Printf("Starting match-night server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// newPublisher selects the event fan-out: Kafka when brokers are configured,
// the structured log otherwise.
func newPublisher(cfg config.EventsConfig) events.Publisher {
	if len(cfg.Brokers) > 0 {
		utils.Info("publishing domain events to kafka", map[string]any{
			"brokers": cfg.Brokers,
			"topic":   cfg.Topic,
		})
		return events.NewKafkaPublisher(cfg.Brokers, cfg.Topic)
	}
	return events.NewLogPublisher()
}

// prepopulateItems adds the default value items for a demo session
func prepopulateItems(repo *repository.MemoryRepo) {
	items := []model.Item{
		{ItemID: "item-adventure", Title: "Adventure", Description: "A life of travel and new places", Status: model.ItemPending, SessionID: "session1"},
		{ItemID: "item-family", Title: "Family", Description: "A close-knit home life", Status: model.ItemPending, SessionID: "session1"},
		{ItemID: "item-knowledge", Title: "Knowledge", Description: "Never stop learning", Status: model.ItemPending, SessionID: "session1"},
	}

	for _, item := range items {
		if err := repo.CreateItem(item); err != nil {
			utils.Warn("failed to prepopulate item", map[string]any{"item_id": item.ItemID, "error": err.Error()})
		}
	}
}
