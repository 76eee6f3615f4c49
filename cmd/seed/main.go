package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/event-planner-api/config"
	"github.com/oksasatya/event-planner-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, name, hashed_password, is_active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, "Demo User", hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	start := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	var eventID string
	err = db.QueryRow(`
		INSERT INTO events (title, description, location, start_time, end_time, is_public, category, created_by)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6, $7)
		RETURNING id
	`, "Community Meetup", "Monthly community get-together", "Main Hall",
		start, start.Add(2*time.Hour), "social", userID).Scan(&eventID)
	if err != nil {
		log.Fatalf("failed to seed event: %v", err)
	}
	fmt.Printf("seeded event: id=%s\n", eventID)

	if _, err := db.Exec(`
		INSERT INTO rsvps (user_id, event_id, status)
		VALUES ($1, $2, 'going')
		ON CONFLICT (user_id, event_id) DO NOTHING
	`, userID, eventID); err != nil {
		log.Fatalf("failed to seed rsvp: %v", err)
	}
	fmt.Println("seeded rsvp for demo user")
}
