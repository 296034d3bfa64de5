package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/gurtar/gurtarctl/internal/httpclient"
)

// CategoriesService exposes the category CRUD operations.
type CategoriesService struct {
	client *httpclient.Client
	cache  *Cache
}

// NewCategoriesService creates the categories service.
func NewCategoriesService(client *httpclient.Client, cache *Cache) *CategoriesService {
	return &CategoriesService{client: client, cache: cache}
}

// List returns a page of categories matching the filters.
func (s *CategoriesService) List(ctx context.Context, filters CategoriesFilters) (*ListResponse[Category], error) {
	return fetchList[Category](ctx, s.client, s.cache, EndpointCategories, filters.query())
}

// Subcategories returns the children of a category.
func (s *CategoriesService) Subcategories(ctx context.Context, categoryID string) ([]Category, error) {
	if strings.TrimSpace(categoryID) == "" {
		return nil, fmt.Errorf("%w: category id is required", ErrValidation)
	}
	var out struct {
		Data []Category `json:"data"`
	}
	if err := s.client.Get(ctx, subcategoriesPath(categoryID), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Create adds a category. The name is required and validated locally.
func (s *CategoriesService) Create(ctx context.Context, input CategoryInput) (*Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	var created Category
	if err := s.client.Post(ctx, EndpointCategories, input, &created); err != nil {
		return nil, err
	}
	s.cache.Invalidate(EndpointCategories)
	return &created, nil
}

// Update replaces a category's name, description and parent.
func (s *CategoriesService) Update(ctx context.Context, categoryID string, input CategoryInput) (*Category, error) {
	if strings.TrimSpace(categoryID) == "" {
		return nil, fmt.Errorf("%w: category id is required", ErrValidation)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	var updated Category
	if err := s.client.Put(ctx, categoryPath(categoryID), input, &updated); err != nil {
		return nil, err
	}
	s.cache.Invalidate(EndpointCategories)
	return &updated, nil
}

// Delete removes a category. The backend refuses when businesses are still
// attached; that error is propagated unchanged.
func (s *CategoriesService) Delete(ctx context.Context, categoryID string) error {
	if strings.TrimSpace(categoryID) == "" {
		return fmt.Errorf("%w: category id is required", ErrValidation)
	}
	if err := s.client.Delete(ctx, categoryPath(categoryID)); err != nil {
		return err
	}
	s.cache.Invalidate(EndpointCategories)
	return nil
}
