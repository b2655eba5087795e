package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sheikhmdsamiul/productchat/internal/docbuild"
	"github.com/sheikhmdsamiul/productchat/internal/domain"
	"github.com/sheikhmdsamiul/productchat/internal/state"
)

// CatalogFetcher retrieves product records from the upstream source.
type CatalogFetcher interface {
	FetchProducts(ctx context.Context) ([]domain.ProductRecord, error)
}

// CatalogService fetches the catalog, converts records to retrievable
// documents, and swaps them into chat state.
type CatalogService struct {
	fetcher CatalogFetcher
	state   *state.ChatState
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(fetcher CatalogFetcher, st *state.ChatState, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{fetcher: fetcher, state: st, logger: logger}
}

// Refresh fetches the catalog and replaces the indexed document set
// wholesale. Returns the number of products loaded.
func (s *CatalogService) Refresh(ctx context.Context) (int, error) {
	products, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		return 0, err
	}

	docs, err := docbuild.BuildAll(products)
	if err != nil {
		return 0, err
	}

	s.state.SetDocuments(docs)
	s.logger.Info("product catalog refreshed", zap.Int("total_products", len(docs)))
	return len(docs), nil
}
