package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/gurtar/gurtarctl/internal/httpclient"
)

// UsersService exposes the admin user operations.
type UsersService struct {
	client *httpclient.Client
	cache  *Cache
}

// NewUsersService creates the users service.
func NewUsersService(client *httpclient.Client, cache *Cache) *UsersService {
	return &UsersService{client: client, cache: cache}
}

// List returns a page of platform users matching the filters.
func (s *UsersService) List(ctx context.Context, filters UsersFilters) (*ListResponse[PlatformUser], error) {
	return fetchList[PlatformUser](ctx, s.client, s.cache, EndpointUsers, filters.query())
}

// Ban bans a user. The reason is required and validated locally before any
// network call.
func (s *UsersService) Ban(ctx context.Context, userID, reason string) error {
	return s.setBanned(ctx, userID, reason)
}

// Unban lifts a ban. Ban and unban share the same endpoint; the backend
// toggles on current state.
func (s *UsersService) Unban(ctx context.Context, userID, reason string) error {
	return s.setBanned(ctx, userID, reason)
}

func (s *UsersService) setBanned(ctx context.Context, userID, reason string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: a reason is required", ErrValidation)
	}
	if err := s.client.Patch(ctx, userBanPath(userID), map[string]string{"reason": reason}, nil); err != nil {
		return err
	}
	s.cache.Invalidate(EndpointUsers)
	return nil
}
