package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"gorm.io/gorm"

	"actipoint/internal/config"
	"actipoint/internal/db"
	"actipoint/internal/model"
	"actipoint/internal/repository"
)

const defaultSeedSource = "seed/activities.json"

// SeedActivityData represents one activity in the seed fixture.
type SeedActivityData struct {
	Name                 string `json:"name"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Location             string `json:"location"`
	Organizer            string `json:"organizer"`
	Description          string `json:"description"`
	Cost                 int    `json:"cost"`
	RequiredParticipants int    `json:"requiredParticipants"`
	CurrentParticipants  int    `json:"currentParticipants"`
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Activity{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	source := os.Getenv("SEED_SOURCE")
	if source == "" {
		source = defaultSeedSource
	}

	log.Printf("Loading activities from: %s", source)
	items, err := loadSeedActivities(source)
	if err != nil {
		log.Fatalf("Failed to load activities: %v", err)
	}
	log.Printf("Loaded %d activities", len(items))

	activityRepo := repository.NewActivityRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding activities into database...")
	created, skipped, err := seedActivities(ctx, activityRepo, items)
	if err != nil {
		log.Fatalf("Failed to seed activities: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New activities created: %d", created)
	log.Printf("  - Existing activities skipped: %d", skipped)
}

// loadSeedActivities reads the fixture from a URL or a local file.
func loadSeedActivities(source string) ([]SeedActivityData, error) {
	var body []byte

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch fixture: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fixture URL returned status code: %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
	} else {
		var err error
		body, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture file: %w", err)
		}
	}

	var items []SeedActivityData
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return items, nil
}

// seedActivities inserts fixture activities, skipping (name, date) pairs
// that already exist.
func seedActivities(ctx context.Context, repo repository.ActivityRepository, items []SeedActivityData) (created int, skipped int, err error) {
	for _, item := range items {
		existing, err := repo.FindByNameAndDate(ctx, item.Name, item.Date)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, skipped, fmt.Errorf("error checking activity %q: %w", item.Name, err)
		}

		if existing != nil {
			skipped++
			continue
		}

		required := item.RequiredParticipants
		if required == 0 {
			required = 1
		}
		activity := model.Activity{
			Name:                 item.Name,
			Date:                 item.Date,
			Time:                 item.Time,
			Location:             item.Location,
			Organizer:            item.Organizer,
			Description:          item.Description,
			Cost:                 item.Cost,
			RequiredParticipants: required,
			CurrentParticipants:  item.CurrentParticipants,
		}
		if err := repo.Create(ctx, &activity); err != nil {
			return created, skipped, fmt.Errorf("error creating activity %q: %w", item.Name, err)
		}
		created++
	}

	return created, skipped, nil
}
