package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bloghive/bloglist-api/internal/core/domain"
)

type stubUserRepo struct {
	byID       map[string]*domain.User
	byUsername map[string]*domain.User
	appended   map[string][]string // userID -> blog ids appended
	insertErr  error
	nextID     int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:       make(map[string]*domain.User),
		byUsername: make(map[string]*domain.User),
		appended:   make(map[string][]string),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.BlogIDs != nil {
		clone.BlogIDs = append(make([]string, 0, len(u.BlogIDs)), u.BlogIDs...)
	}
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	copy := cloneUser(u)
	r.byID[copy.ID] = copy
	r.byUsername[copy.Username] = copy
	return copy
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("%024d", r.nextID)
	r.add(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) AppendBlog(_ context.Context, userID, blogID string) error {
	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.BlogIDs = append(u.BlogIDs, blogID)
	r.appended[userID] = append(r.appended[userID], blogID)
	return nil
}

func TestAuthService_IssueAndVerify(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	user := &domain.User{ID: "64917204dc156ae7842b7985", Username: "alice"}
	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.SubjectID != user.ID {
		t.Fatalf("subject = %q, want %q", claims.SubjectID, user.ID)
	}
	if claims.Username != "alice" {
		t.Fatalf("username = %q, want alice", claims.Username)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry %v not in the future", claims.ExpiresAt)
	}
}

func TestAuthService_Verify_WrongSecret(t *testing.T) {
	issuer := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	verifier := NewAuthService(newStubUserRepo(), "other-secret", time.Hour)

	token, err := issuer.IssueToken(&domain.User{ID: "64917204dc156ae7842b7985", Username: "alice"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_Verify_Garbage(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	// A negative TTL is normalised to the default by the constructor, so
	// issue an expired token through a second service built directly.
	expired := &AuthService{users: newStubUserRepo(), jwtSecret: "secret", tokenTTL: -time.Minute}

	token, err := expired.IssueToken(&domain.User{ID: "64917204dc156ae7842b7985", Username: "alice"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_Verify_MissingSubject(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	// Token signed with the right secret but no id claim.
	token, err := svc.IssueToken(&domain.User{Username: "ghost"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for missing subject, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	repo.add(&domain.User{ID: "64917204dc156ae7842b7985", Username: "carol", Name: "Carol", PasswordHash: string(hash)})

	svc := NewAuthService(repo, "secret", time.Hour)
	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify issued token: %v", err)
	}
	if claims.SubjectID != "64917204dc156ae7842b7985" {
		t.Fatalf("subject = %q", claims.SubjectID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	repo.add(&domain.User{ID: "64917204dc156ae7842b7985", Username: "carol", PasswordHash: string(hash)})

	svc := NewAuthService(repo, "secret", time.Hour)
	if _, _, err := svc.Login(context.Background(), "carol", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	// Unknown usernames fold into ErrInvalidCredentials so the response
	// cannot be used to probe which accounts exist.
	if _, _, err := svc.Login(context.Background(), "nobody", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
