package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/shashankrushiya/bookstore-api/config"
	"github.com/shashankrushiya/bookstore-api/pkg/helpers"
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
	password := "password"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	books := []struct {
		name, author, summary string
		year                  int
	}{
		{"The Go Programming Language", "Alan A. A. Donovan", "A comprehensive introduction to Go.", 2015},
		{"Designing Data-Intensive Applications", "Martin Kleppmann", "The big ideas behind reliable, scalable systems.", 2017},
	}
	for _, b := range books {
		var bookID int64
		err = db.QueryRow(`
			INSERT INTO books (name, author, published_year, book_summary)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, b.name, b.author, b.year, b.summary).Scan(&bookID)
		if err != nil {
			log.Fatalf("failed to seed book %q: %v", b.name, err)
		}
		fmt.Printf("seeded book: id=%d name=%s\n", bookID, b.name)
	}
}
