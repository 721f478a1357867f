package repository

import (
	"context"
	"errors"

	"github.com/elenavoss/advisor/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// BlueprintRepo is the archive of finished blueprints. Each generation run
// that produces a blueprint stores one row; history and show read them back.
type BlueprintRepo interface {
	Create(ctx context.Context, bp *domain.Blueprint) error
	GetByID(ctx context.Context, id string) (*domain.Blueprint, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Blueprint, error)
	Delete(ctx context.Context, id string) error
}
