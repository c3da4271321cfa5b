package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caltrack/caltrack/internal/models"
)

// DefaultCalorieGoal is the daily kcal budget assigned at registration
// until the user configures their own.
const DefaultCalorieGoal = 2000

// dummyHash is a bcrypt hash compared against when login hits an unknown
// email, so the failure path costs the same as a real password check.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// EmailExists returns true if a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	// CreateUser persists a new user record.
	CreateUser(ctx context.Context, u *models.User) error
	// GetUserByEmail fetches a user by email, returning (nil, nil) when
	// no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenIssuer creates a session token bound to a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService using the provided repository
// and token issuer.
func NewAuthService(users UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password and default
// profile values. Returns ErrDuplicateEmail if the email is taken.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CalorieGoal:  DefaultCalorieGoal,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		// Burn a comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return tok, user, nil
}
