package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/gurtar/gurtarctl/internal/httpclient"
)

// ContactsService exposes the contact message operations.
type ContactsService struct {
	client *httpclient.Client
	cache  *Cache
}

// NewContactsService creates the contacts service.
func NewContactsService(client *httpclient.Client, cache *Cache) *ContactsService {
	return &ContactsService{client: client, cache: cache}
}

// List returns a page of contact messages matching the filters.
func (s *ContactsService) List(ctx context.Context, filters ContactsFilters) (*ListResponse[ContactMessage], error) {
	return fetchList[ContactMessage](ctx, s.client, s.cache, EndpointContacts, filters.query())
}

// SetResolved marks a contact message resolved or unresolved.
func (s *ContactsService) SetResolved(ctx context.Context, messageID string, resolved bool) error {
	if strings.TrimSpace(messageID) == "" {
		return fmt.Errorf("%w: message id is required", ErrValidation)
	}
	if err := s.client.Patch(ctx, contactResolvePath(messageID), map[string]bool{"is_resolved": resolved}, nil); err != nil {
		return err
	}
	s.cache.Invalidate(EndpointContacts)
	return nil
}

// Create submits a message through the public contact endpoint. All fields
// are required.
func (s *ContactsService) Create(ctx context.Context, input CreateContactInput) error {
	for field, value := range map[string]string{
		"name":    input.Name,
		"email":   input.Email,
		"subject": input.Subject,
		"message": input.Message,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	if err := s.client.Post(ctx, EndpointContactCreate, input, nil); err != nil {
		return err
	}
	s.cache.Invalidate(EndpointContacts)
	return nil
}
