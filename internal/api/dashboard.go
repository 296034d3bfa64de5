package api

import (
	"context"
	"fmt"

	"github.com/gurtar/gurtarctl/internal/httpclient"
)

// DashboardService exposes the statistics dashboard operations.
type DashboardService struct {
	client *httpclient.Client
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(client *httpclient.Client) *DashboardService {
	return &DashboardService{client: client}
}

// Stats returns the full statistics payload for the given window.
func (s *DashboardService) Stats(ctx context.Context, filters StatsFilters) (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.client.Get(ctx, EndpointDashboardStats, filters.query(), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Export returns the statistics rendered by the server in the requested
// format, as an opaque byte payload suitable for writing to a file.
func (s *DashboardService) Export(ctx context.Context, format ExportFormat, filters StatsFilters) ([]byte, error) {
	switch format {
	case ExportCSV, ExportJSON, ExportExcel:
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", ErrValidation, format)
	}
	query := filters.query()
	query.Set("format", string(format))
	return s.client.GetRaw(ctx, EndpointDashboardExport, query)
}
