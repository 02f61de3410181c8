package main

import (
	"context"
	"flag"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/infrastructure/config"
	mongoinfra "github.com/gigstage/booking-system/internal/infrastructure/db/mongo"
	"github.com/gigstage/booking-system/pkg/logger"
)

// Seeds the database with sample accounts, artist profiles, and events for
// local development.
//
//	go run ./cmd/seed -import
//	go run ./cmd/seed -destroy
func main() {
	doImport := flag.Bool("import", false, "insert sample data")
	doDestroy := flag.Bool("destroy", false, "remove all data")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer client.Disconnect(context.Background())

	switch {
	case *doImport:
		if err := importData(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("import failed")
		}
		log.Info().Msg("sample data imported")
	case *doDestroy:
		if err := destroyData(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("destroy failed")
		}
		log.Info().Msg("all data removed")
	default:
		flag.Usage()
	}
}

func importData(ctx context.Context, db *mongo.Database) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()

	adminID := primitive.NewObjectID()
	organizerID := primitive.NewObjectID()
	artistUserID := primitive.NewObjectID()

	users := []any{
		domain.User{ID: adminID, Name: "Admin", Email: "admin@example.com",
			Password: string(hash), Role: domain.RoleAdmin, CreatedAt: now, UpdatedAt: now},
		domain.User{ID: organizerID, Name: "Olivia Organizer", Email: "olivia@example.com",
			Password: string(hash), Role: domain.RoleUser, CreatedAt: now, UpdatedAt: now},
		domain.User{ID: artistUserID, Name: "Max Melody", Email: "max@example.com",
			Password: string(hash), Role: domain.RoleArtist, CreatedAt: now, UpdatedAt: now},
	}
	if _, err := db.Collection("users").InsertMany(ctx, users); err != nil {
		return err
	}

	nextWeek := now.AddDate(0, 0, 7)
	artists := []any{
		domain.Artist{
			ID:         primitive.NewObjectID(),
			User:       artistUserID,
			StageName:  "Max & The Melodies",
			Bio:        "Indie four-piece covering everything from jazz standards to synth pop.",
			Genres:     []string{"indie", "jazz", "pop"},
			HourlyRate: 150,
			Availability: []domain.AvailabilitySlot{
				{Date: nextWeek, IsAvailable: true},
				{Date: nextWeek.AddDate(0, 0, 1), IsAvailable: true},
			},
			ProfileImage: "default-profile.jpg",
			Gallery:      []string{},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	if _, err := db.Collection("artists").InsertMany(ctx, artists); err != nil {
		return err
	}

	events := []any{
		domain.Event{
			ID:          primitive.NewObjectID(),
			Title:       "Summer Garden Wedding",
			Description: "Evening reception, live band wanted for dinner and dancing.",
			Organizer:   organizerID,
			EventType:   "wedding",
			Date:        nextWeek,
			Duration:    4,
			Location: domain.Location{
				Address: "12 Rosewood Lane", City: "Austin", State: "TX",
				Country: "USA", ZipCode: "78701",
			},
			Budget:         1000,
			RequiredGenres: []string{"jazz", "pop"},
			Status:         domain.EventPublished,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
	if _, err := db.Collection("events").InsertMany(ctx, events); err != nil {
		return err
	}
	return nil
}

func destroyData(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{"users", "artists", "events", "bookings", "reviews"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}
