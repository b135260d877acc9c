// seed inserts a pair of demo users and a handful of cards into the
// local dev database. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/moscow89er/mesto-api/internal/domain"
	"github.com/moscow89er/mesto-api/internal/infrastructure/postgres"
	"github.com/moscow89er/mesto-api/internal/password"
)

const seedPassword = "explorer-2024"

var seedUsers = []domain.User{
	{Email: "cousteau@seed.local"},
	{
		Name:   "Marie Curie",
		About:  "Scientist",
		Avatar: "https://images.unsplash.com/photo-1580894732444-8ecded7900cd",
		Email:  "curie@seed.local",
	},
}

var seedCards = []struct {
	name  string
	link  string
	owner int // index into seedUsers
}{
	{"Baikal", "https://images.unsplash.com/photo-1552093731-8c36926d6d4e", 0},
	{"Elbrus", "https://images.unsplash.com/photo-1589135233689-d48a37e15d27", 0},
	{"Karelia", "https://images.unsplash.com/photo-1584132905271-512c958d674a", 1},
	{"Kamchatka", "https://images.unsplash.com/photo-1588432836741-a5c2f07a7a5a", 1},
	{"Altai", "https://images.unsplash.com/photo-1602097944085-41e0e0e2dcbd", 1},
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	cards := postgres.NewCardRepository(pool)

	hash, err := password.Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Create users, skipping any that already exist (idempotent re-runs).
	var userIDs []string
	var created, skipped int
	for _, u := range seedUsers {
		u.PasswordHash = hash
		saved, err := users.Create(ctx, &u)
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				existing, err := users.FindByEmail(ctx, u.Email)
				if err != nil {
					log.Fatalf("find user %s: %v", u.Email, err)
				}
				userIDs = append(userIDs, existing.ID)
				skipped++
				continue
			}
			log.Fatalf("create user %s: %v", u.Email, err)
		}
		userIDs = append(userIDs, saved.ID)
		created++
	}

	var cardIDs []string
	for _, spec := range seedCards {
		card, err := cards.Create(ctx, &domain.Card{
			Name:    spec.name,
			Link:    spec.link,
			OwnerID: userIDs[spec.owner],
		})
		if err != nil {
			log.Fatalf("create card %s: %v", spec.name, err)
		}
		cardIDs = append(cardIDs, card.ID)
	}

	// Cross-like a few cards so the likes arrays are non-empty.
	for i, cardID := range cardIDs {
		liker := userIDs[(i+1)%len(userIDs)]
		if err := cards.AddLike(ctx, cardID, liker); err != nil {
			log.Fatalf("like card %s: %v", cardID, err)
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Users created: %d  (skipped %d already existing)\n", created, skipped)
	fmt.Printf("  Cards created: %d\n", len(cardIDs))
	fmt.Printf("  Password for all seed users: %s\n", seedPassword)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:3000/signin \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedUsers[0].Email, seedPassword)
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:3000/cards -H \"Authorization: Bearer $JWT\"")
}
