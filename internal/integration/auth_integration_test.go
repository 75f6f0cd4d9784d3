package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"todo_webapp/internal/repository"
	"todo_webapp/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	applyMigrations(t, pool)
	return pool
}

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	pool := testPool(t)
	service.InitJWT("integration-secret")

	auth := service.NewAuthService(repository.NewUserRepository(pool))
	ctx := context.Background()
	username := uniqueName("alice")

	id, err := auth.Register(ctx, username, "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == 0 {
		t.Fatal("register returned zero id")
	}

	token, err := auth.Login(ctx, username, "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := service.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != id {
		t.Fatalf("token user_id = %d; want %d", claims.UserID, id)
	}
	if claims.Username != username {
		t.Fatalf("token username = %q; want %q", claims.Username, username)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	pool := testPool(t)
	service.InitJWT("integration-secret")

	auth := service.NewAuthService(repository.NewUserRepository(pool))
	ctx := context.Background()
	username := uniqueName("bob")

	if _, err := auth.Register(ctx, username, "pw1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := auth.Register(ctx, username, "pw2")
	if !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("second register: got %v; want ErrUsernameTaken", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	pool := testPool(t)
	service.InitJWT("integration-secret")

	auth := service.NewAuthService(repository.NewUserRepository(pool))
	ctx := context.Background()
	username := uniqueName("carol")

	if _, err := auth.Register(ctx, username, "right-password"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, errWrongPw := auth.Login(ctx, username, "wrong-password")
	_, errNoUser := auth.Login(ctx, uniqueName("nobody"), "whatever")

	if !errors.Is(errWrongPw, service.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", errWrongPw)
	}
	if !errors.Is(errNoUser, service.ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v", errNoUser)
	}
	if errWrongPw.Error() != errNoUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", errWrongPw, errNoUser)
	}
}

func TestPasswordHashIsNotPlaintext(t *testing.T) {
	pool := testPool(t)
	service.InitJWT("integration-secret")

	users := repository.NewUserRepository(pool)
	auth := service.NewAuthService(users)
	ctx := context.Background()
	username := uniqueName("dave")

	if _, err := auth.Register(ctx, username, "plaintext-password"); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := users.GetByUsername(ctx, username)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.PasswordHash == "plaintext-password" {
		t.Fatal("password stored in plaintext")
	}
}
