package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

type seedProduct struct {
	name  string
	unit  string
	price float64
}

var products = []seedProduct{
	{"toothbrush", "each", 0.99},
	{"toothpaste", "each", 1.79},
	{"apples", "kilo", 1.99},
	{"rice", "each", 2.49},
	{"orange juice", "each", 2.00},
	{"cherry tomatoes", "each", 0.69},
}

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = conn.Close(ctx) }()

	for _, p := range products {
		_, err := conn.Exec(ctx,
			`INSERT INTO products (name, unit, price)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO UPDATE SET unit = EXCLUDED.unit, price = EXCLUDED.price`,
			p.name, p.unit, p.price,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed %s: %v\n", p.name, err)
			os.Exit(1)
		}
		fmt.Printf("seeded %s (%s) at %.2f\n", p.name, p.unit, p.price)
	}
}
