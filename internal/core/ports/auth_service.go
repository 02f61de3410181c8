package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // defaults to "user" when empty
}

// UpdateDetailsInput carries optional profile changes for the current user.
type UpdateDetailsInput struct {
	Name  *string
	Email *string
}

// AuthService implements registration, login, and self-service profile access.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Me(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateDetails(ctx context.Context, userID primitive.ObjectID, in UpdateDetailsInput) (*domain.User, error)
}
