// Package main provides a tool to seed the database with demo data.
//
// It creates a couple of users and a handful of recipes with
// ingredient lists, so a fresh install has something to schedule.
//
// Usage:
//
//	go run ./cmd/seed -data-path ~/Mealboard/data
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mealboardapp/mealboard-server/internal/auth"
	"github.com/mealboardapp/mealboard-server/internal/domain"
	"github.com/mealboardapp/mealboard-server/internal/id"
	"github.com/mealboardapp/mealboard-server/internal/store/sqlite"
)

type seedUser struct {
	email       string
	displayName string
	password    string
}

type seedRecipe struct {
	ownerEmail  string
	title       string
	description string
	servings    int
	prepMinutes int
	cookMinutes int
	visibility  domain.RecipeVisibility
	ingredients []domain.RecipeIngredient
}

var users = []seedUser{
	{email: "alice@mealboard.local", displayName: "Alice", password: "alice-demo-pass"},
	{email: "bob@mealboard.local", displayName: "Bob", password: "bob-demo-pass"},
}

var recipes = []seedRecipe{
	{
		ownerEmail:  "alice@mealboard.local",
		title:       "Buttermilk Pancakes",
		description: "Weekend breakfast staple.",
		servings:    4,
		prepMinutes: 10,
		cookMinutes: 20,
		visibility:  domain.VisibilityPublic,
		ingredients: []domain.RecipeIngredient{
			{Name: "Flour", Quantity: "250", Unit: "g"},
			{Name: "Buttermilk", Quantity: "300", Unit: "ml"},
			{Name: "Egg", Quantity: "2"},
			{Name: "Sugar", Quantity: "30", Unit: "g"},
			{Name: "Salt", Quantity: "a pinch"},
		},
	},
	{
		ownerEmail:  "alice@mealboard.local",
		title:       "Tomato Soup",
		description: "Simple roasted tomato soup.",
		servings:    2,
		prepMinutes: 15,
		cookMinutes: 40,
		visibility:  domain.VisibilityPublic,
		ingredients: []domain.RecipeIngredient{
			{Name: "Tomatoes", Quantity: "1", Unit: "kg"},
			{Name: "Onion", Quantity: "1"},
			{Name: "Olive oil", Quantity: "2", Unit: "tbsp"},
			{Name: "Salt", Quantity: "to taste"},
		},
	},
	{
		ownerEmail:  "bob@mealboard.local",
		title:       "Midnight Ramen",
		description: "Bob's secret late-night ramen.",
		servings:    1,
		prepMinutes: 5,
		cookMinutes: 10,
		visibility:  domain.VisibilityPrivate,
		ingredients: []domain.RecipeIngredient{
			{Name: "Ramen noodles", Quantity: "1", Unit: "pack"},
			{Name: "Egg", Quantity: "1"},
			{Name: "Scallions", Quantity: "2"},
		},
	},
}

func main() {
	dataPath := flag.String("data-path", "", "Data directory containing mealboard.db")
	flag.Parse()

	if *dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("resolve home directory: %v", err)
		}
		*dataPath = filepath.Join(home, "Mealboard", "data")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	st, err := sqlite.Open(filepath.Join(*dataPath, "mealboard.db"), logger)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	userIDs := make(map[string]string, len(users))
	seeded := make(map[string]bool, len(users))

	for _, u := range users {
		if existing, err := st.GetUserByEmail(ctx, u.email); err == nil {
			userIDs[u.email] = existing.ID
			fmt.Printf("user %s already exists\n", u.email)
			continue
		}

		hash, err := auth.HashPassword(u.password)
		if err != nil {
			log.Fatalf("hash password for %s: %v", u.email, err)
		}
		userID, err := id.Generate("user")
		if err != nil {
			log.Fatalf("generate user ID: %v", err)
		}

		now := time.Now()
		user := &domain.User{
			ID:           userID,
			Email:        u.email,
			DisplayName:  u.displayName,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := st.CreateUser(ctx, user); err != nil {
			log.Fatalf("create user %s: %v", u.email, err)
		}
		userIDs[u.email] = userID
		seeded[u.email] = true
		fmt.Printf("created user %s (password: %s)\n", u.email, u.password)
	}

	for _, r := range recipes {
		// Re-running the seeder must not duplicate recipes.
		if !seeded[r.ownerEmail] {
			fmt.Printf("skipping %q, owner %s was already seeded\n", r.title, r.ownerEmail)
			continue
		}
		ownerID := userIDs[r.ownerEmail]

		recipeID, err := id.Generate("recipe")
		if err != nil {
			log.Fatalf("generate recipe ID: %v", err)
		}

		now := time.Now()
		recipe := &domain.Recipe{
			ID:              recipeID,
			OwnerID:         ownerID,
			Title:           r.title,
			Description:     r.description,
			Servings:        r.servings,
			PrepTimeMinutes: r.prepMinutes,
			CookTimeMinutes: r.cookMinutes,
			Visibility:      r.visibility,
			Ingredients:     r.ingredients,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := st.CreateRecipe(ctx, recipe); err != nil {
			log.Fatalf("create recipe %q: %v", r.title, err)
		}
		fmt.Printf("created recipe %q (%s)\n", r.title, recipe.Visibility)
	}

	fmt.Println("done")
}
