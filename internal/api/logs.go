package api

import (
	"context"

	"github.com/gurtar/gurtarctl/internal/httpclient"
)

// LogsService exposes the admin action log listing.
type LogsService struct {
	client *httpclient.Client
	cache  *Cache
}

// NewLogsService creates the logs service.
func NewLogsService(client *httpclient.Client, cache *Cache) *LogsService {
	return &LogsService{client: client, cache: cache}
}

// List returns a page of admin log entries matching the filters.
func (s *LogsService) List(ctx context.Context, filters LogsFilters) (*ListResponse[AdminLog], error) {
	return fetchList[AdminLog](ctx, s.client, s.cache, EndpointLogs, filters.query())
}
