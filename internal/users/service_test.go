package users

import (
	"context"
	"testing"

	"mansionmarket-backend/internal/auth"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	byEmail map[string]User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byEmail: make(map[string]User)}
}

func (f *fakeRepository) Create(ctx context.Context, item User) error {
	if _, exists := f.byEmail[item.Email]; exists {
		return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	}
	f.byEmail[item.Email] = item
	return nil
}

func (f *fakeRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	item, ok := f.byEmail[email]
	if !ok {
		return User{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepository) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(f.byEmail))
	for _, item := range f.byEmail {
		out = append(out, item)
	}
	return out, nil
}

func signupRequest(email string) SignupRequest {
	return SignupRequest{
		FirstName:       "Ava",
		LastName:        "Stone",
		Email:           email,
		Password:        "supersecret1",
		ConfirmPassword: "supersecret1",
		Role:            RoleAdmin,
	}
}

func TestSignupHashesPasswordAndLowercasesEmail(t *testing.T) {
	svc := NewService(newFakeRepository())

	item, err := svc.Signup(context.Background(), signupRequest("Ava@Example.COM"))
	require.NoError(t, err)
	require.Equal(t, "ava@example.com", item.Email)
	require.NotEmpty(t, item.PasswordHash)
	require.NotEqual(t, "supersecret1", item.PasswordHash)
	require.NoError(t, auth.ComparePassword(item.PasswordHash, "supersecret1"))
}

func TestSignupPasswordMismatch(t *testing.T) {
	svc := NewService(newFakeRepository())

	req := signupRequest("ava@example.com")
	req.ConfirmPassword = "different1234"

	_, err := svc.Signup(context.Background(), req)
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Signup(context.Background(), signupRequest("ava@example.com"))
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupRequest("ava@example.com"))
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginSuccess(t *testing.T) {
	svc := NewService(newFakeRepository())

	created, err := svc.Signup(context.Background(), signupRequest("ava@example.com"))
	require.NoError(t, err)

	item, err := svc.Login(context.Background(), LoginRequest{Email: "AVA@example.com", Password: "supersecret1"})
	require.NoError(t, err)
	require.Equal(t, created.ID, item.ID)
	require.Equal(t, RoleAdmin, item.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Signup(context.Background(), signupRequest("ava@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "ava@example.com", Password: "wrongpassword"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
