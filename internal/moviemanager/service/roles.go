package service

import (
	"context"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/domain"
	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/store"
)

type RolesService struct {
	Store store.Store
}

// ListAll returns the seeded roles. Readiness uses it to confirm the
// reference data is present.
func (s *RolesService) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}
