package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/gurtar/gurtarctl/internal/httpclient"
)

// BusinessesService exposes the admin business operations.
type BusinessesService struct {
	client *httpclient.Client
	cache  *Cache
}

// NewBusinessesService creates the businesses service.
func NewBusinessesService(client *httpclient.Client, cache *Cache) *BusinessesService {
	return &BusinessesService{client: client, cache: cache}
}

// List returns a page of businesses matching the filters.
func (s *BusinessesService) List(ctx context.Context, filters BusinessesFilters) (*ListResponse[Business], error) {
	return fetchList[Business](ctx, s.client, s.cache, EndpointBusinesses, filters.query())
}

// Verify toggles a business's verified flag. The reason is required.
func (s *BusinessesService) Verify(ctx context.Context, businessID, reason string) error {
	if err := requireIDAndReason(businessID, reason); err != nil {
		return err
	}
	if err := s.client.Patch(ctx, businessVerifyPath(businessID), map[string]string{"reason": reason}, nil); err != nil {
		return err
	}
	s.cache.Invalidate(EndpointBusinesses)
	return nil
}

// ToggleStatus flips a business between active and inactive. The reason is
// required.
func (s *BusinessesService) ToggleStatus(ctx context.Context, businessID, reason string) error {
	if err := requireIDAndReason(businessID, reason); err != nil {
		return err
	}
	if err := s.client.Patch(ctx, businessToggleStatusPath(businessID), map[string]string{"reason": reason}, nil); err != nil {
		return err
	}
	s.cache.Invalidate(EndpointBusinesses)
	return nil
}

// Orders returns a page of one business's orders.
func (s *BusinessesService) Orders(ctx context.Context, businessID string, filters BusinessOrdersFilters) (*ListResponse[BusinessOrder], error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, fmt.Errorf("%w: business id is required", ErrValidation)
	}
	return fetchList[BusinessOrder](ctx, s.client, s.cache, businessOrdersPath(businessID), filters.query())
}

func requireIDAndReason(id, reason string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: business id is required", ErrValidation)
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: a reason is required", ErrValidation)
	}
	return nil
}
