package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"pawfinders_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists if the email
	// is already registered.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user matching the given email, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator defines the interface for issuing login tokens.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name        string
	Contact     string
	Email       string
	DateOfBirth string
	Password    string
	Country     string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// Register creates a new user with a bcrypt-hashed password (cost 10). The
// duplicate-email case surfaces as ErrEmailAlreadyExists from the
// repository's unique constraint.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Name:        in.Name,
		Contact:     in.Contact,
		Email:       in.Email,
		DateOfBirth: in.DateOfBirth,
		Password:    string(hashed),
		Country:     in.Country,
	}
	return u.users.Create(ctx, user)
}

// Login authenticates the user and returns a signed JWT on success. Unknown
// emails and wrong passwords are reported as distinct errors; the handler
// decides how much of that to reveal.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// Profile returns the user record for an authenticated user ID.
func (u *authUsecase) Profile(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}
