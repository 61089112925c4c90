// Command seed inserts a demo user and a couple of ideas for local
// development.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/darshanbachhav0/Entrepreneur/config"
	"github.com/darshanbachhav0/Entrepreneur/internal/domain/entity"
	"github.com/darshanbachhav0/Entrepreneur/internal/infrastructure/mongodb"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoConnTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()

	users := mongodb.NewUserRepository(db)
	ideas := mongodb.NewIdeaRepository(db)

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := &entity.User{Username: "demoUser", Email: email, PasswordHash: hash}
	if err := users.Create(ctx, u); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID.Hex(), email, password)

	seedIdeas := []entity.Idea{
		{
			Title:       "Community seed library",
			Description: "A neighborhood library for vegetable and flower seeds.",
			Domain:      "agriculture",
		},
		{
			Title:       "Telehealth kiosk",
			Description: "Walk-up kiosks for quick remote consultations.",
			Domain:      "health",
		},
	}
	for i := range seedIdeas {
		idea := seedIdeas[i]
		idea.AuthorID = u.ID
		idea.AuthorName = u.Username
		idea.AuthorEmail = u.Email
		if err := ideas.Create(ctx, &idea); err != nil {
			log.Fatalf("failed to seed idea: %v", err)
		}
		fmt.Printf("seeded idea: id=%s title=%q domain=%s\n", idea.ID.Hex(), idea.Title, idea.Domain)
	}
}
