package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/khoahotran/interview-tracker/pkg/auth"
)

func main() {
	fmt.Println("adding admin into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminName := os.Getenv("ADMIN_NAME")
	if adminName == "" {
		adminName = "Admin"
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	var userID uuid.UUID
	err = pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
		RETURNING id
	`, uuid.New(), adminEmail, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO profiles (id, name, verified, is_admin)
		VALUES ($1, $2, TRUE, TRUE)
		ON CONFLICT (id) DO UPDATE SET name = $2, verified = TRUE, is_admin = TRUE
	`, userID, adminName)
	if err != nil {
		log.Fatalf("cannot add profile: %v", err)
	}

	fmt.Printf("added or updated admin '%s' successfully!\n", adminEmail)
}
