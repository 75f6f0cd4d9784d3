package main

import (
	"context"
	"errors"
	"log"
	"os"

	"todo_webapp/internal/db"
	"todo_webapp/internal/repository"
	"todo_webapp/internal/service"
)

// Registers a throwaway account and prints a token for manual API poking.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}
	service.InitJWT(secret)

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	auth := service.NewAuthService(users)
	ctx := context.Background()

	const (
		username = "testuser"
		password = "testpassword"
	)

	if _, err := auth.Register(ctx, username, password); err != nil {
		if !errors.Is(err, repository.ErrUsernameTaken) {
			log.Fatalf("register failed: %v", err)
		}
		log.Printf("user %q already exists", username)
	} else {
		log.Printf("user %q created", username)
	}

	token, err := auth.Login(ctx, username, password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	log.Printf("token=%s", token)
}
