package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghive/bloglist-api/internal/core/domain"
	"github.com/bloghive/bloglist-api/internal/core/ports"
)

func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "user1",
		Name:     "User One",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if user.PasswordHash == "password1" {
		t.Fatalf("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.BlogIDs == nil || len(user.BlogIDs) != 0 {
		t.Fatalf("expected empty blog list, got %v", user.BlogIDs)
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "user1", Name: "User One", Password: "password1"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "user1", Name: "User One Duplicate", Password: "password4"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	users, _ := svc.List(context.Background())
	if len(users) != 1 {
		t.Fatalf("user collection changed: %d users", len(users))
	}
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "user1", Name: "User One", Password: "password1"})
	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "user2", Name: "User Two", Password: "password2"})

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len = %d, want 2", len(users))
	}
}
