package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"bookweb/internal/book"
	"bookweb/internal/platform/bookapi"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	insecure, _ := strconv.ParseBool(os.Getenv("BOOKS_API_INSECURE_TLS"))
	client := bookapi.NewClient(bookapi.Config{
		BaseURL:            os.Getenv("BOOKS_API_BASE_URL"),
		RPS:                20,
		InsecureSkipVerify: insecure,
	})

	count := 50
	if v, err := strconv.Atoi(os.Getenv("SEED_COUNT")); err == nil && v > 0 {
		count = v
	}
	log.Printf("Creating %d books...", count)

	authors := []string{"Ursula K. Le Guin", "Octavia E. Butler", "Terry Pratchett", "Italo Calvino", "Haruki Murakami", "Chinua Achebe", "Toni Morrison", "Stanisław Lem"}

	created := 0
	for i := 0; i < count; i++ {
		in, violations := book.ValidateInput(book.Input{
			Title:       fmt.Sprintf("Book Title %d - %s", i+1, getRandomWord()),
			Author:      authors[rand.Intn(len(authors))],
			Description: fmt.Sprintf("This is a book about %s. It explores the fundamental concepts and provides insights into the subject matter.", getRandomWord()),
		})
		if violations != nil {
			log.Fatalf("Generated invalid book %d: %v", i+1, violations)
		}

		b, err := client.Create(ctx, in)
		if err != nil {
			log.Fatalf("Failed to create book %d: %v", i+1, err)
		}
		created++

		if created%10 == 0 {
			log.Printf("Created %d/%d books (last id %d)", created, count, b.ID)
		}
	}

	books, err := client.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list books: %v", err)
	}
	log.Printf("Successfully created %d books! Total books in API: %d", created, len(books))
}

func getRandomWord() string {
	words := []string{"adventure", "mystery", "science", "history", "love", "war", "peace", "journey", "discovery", "innovation", "technology", "philosophy", "art", "music", "nature"}
	return words[rand.Intn(len(words))]
}
