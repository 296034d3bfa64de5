package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	var gotQuery url.Values
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, EndpointDashboardStats, r.URL.Path)
		gotQuery = r.URL.Query()
		respond(w, http.StatusOK, DashboardStats{
			Users:  UserStats{Total: 120, Banned: 3},
			Orders: OrderStats{Total: 540, TotalCO2Saved: 812.5},
			Contact: ContactStats{
				Total:   12,
				Pending: 4,
			},
		})
	}))
	env.loginAs(t, "admin", "admin@gurtar.com", "admin")

	stats, err := NewDashboardService(env.client).Stats(context.Background(), StatsFilters{
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-01-01", gotQuery.Get("startDate"))
	assert.Equal(t, "2026-06-30", gotQuery.Get("endDate"))
	assert.Equal(t, 120, stats.Users.Total)
	assert.Equal(t, 540, stats.Orders.Total)
	assert.InDelta(t, 812.5, stats.Orders.TotalCO2Saved, 0.01)
	assert.Equal(t, 4, stats.Contact.Pending)
}

func TestDashboardService_Export(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, EndpointDashboardExport, r.URL.Path)
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("startDate"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("metric,value\nusers,120\n"))
	}))
	env.loginAs(t, "admin", "admin@gurtar.com", "admin")

	data, err := NewDashboardService(env.client).Export(context.Background(), ExportCSV, StatsFilters{StartDate: "2026-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "metric,value\nusers,120\n", string(data))
}

func TestDashboardService_ExportRejectsUnknownFormat(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation must fail before any request is sent")
	}))

	_, err := NewDashboardService(env.client).Export(context.Background(), ExportFormat("pdf"), StatsFilters{})
	assert.ErrorIs(t, err, ErrValidation)
}
