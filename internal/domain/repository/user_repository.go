package repository

import (
	"context"
	"time"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	// HasAny indica si existe al menos un usuario (bootstrap del admin).
	HasAny(ctx context.Context) (bool, error)
}
