package catalog

import (
	"context"
	"fmt"

	"vpnAdvisor/business/recommender"
	"vpnAdvisor/domain"
)

// Importer is the write side of the catalog; the postgres repository
// implements it for admin CSV imports.
type Importer interface {
	UpsertAll(ctx context.Context, services []domain.VPNService) error
}

type Service struct {
	repo     recommender.CatalogRepository
	importer Importer
}

func NewService(repo recommender.CatalogRepository, importer Importer) *Service {
	return &Service{repo: repo, importer: importer}
}

func (s *Service) GetCatalog(ctx context.Context) ([]domain.VPNService, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.repo.FindAll(ctx)
}

// Import copies a catalog snapshot from src into the persistent store.
func (s *Service) Import(ctx context.Context, src recommender.CatalogRepository) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}
	if s.importer == nil {
		return 0, fmt.Errorf("catalog import is not configured")
	}

	services, err := src.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("read import source: %w", err)
	}
	if len(services) == 0 {
		return 0, fmt.Errorf("import source is empty")
	}

	if err := s.importer.UpsertAll(ctx, services); err != nil {
		return 0, err
	}

	return len(services), nil
}
