package api

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterQueryBuilders(t *testing.T) {
	banned := false
	verified := true

	tests := []struct {
		name    string
		filters interface{ query() url.Values }
		want    url.Values
	}{
		{
			name:    "zero users filters emit nothing",
			filters: UsersFilters{},
			want:    url.Values{},
		},
		{
			name: "users filters",
			filters: UsersFilters{
				Page:     3,
				Limit:    50,
				Role:     "business_owner",
				IsBanned: &banned,
				Search:   "ada",
				Sort:     "created_at",
				Order:    SortAsc,
			},
			want: url.Values{
				"page":      {"3"},
				"limit":     {"50"},
				"role":      {"business_owner"},
				"is_banned": {"false"},
				"search":    {"ada"},
				"sort":      {"created_at"},
				"order":     {"ASC"},
			},
		},
		{
			name: "businesses filters",
			filters: BusinessesFilters{
				Page:       1,
				IsVerified: &verified,
				City:       "Yerevan",
			},
			want: url.Values{
				"page":        {"1"},
				"is_verified": {"true"},
				"city":        {"Yerevan"},
			},
		},
		{
			name: "categories filters include subcategories",
			filters: CategoriesFilters{
				Search:               "bak",
				IncludeSubcategories: true,
			},
			want: url.Values{
				"search":                {"bak"},
				"include_subcategories": {"true"},
			},
		},
		{
			name:    "business orders filters",
			filters: BusinessOrdersFilters{Status: OrderPending, Order: SortDesc},
			want: url.Values{
				"status": {"pending"},
				"order":  {"DESC"},
			},
		},
		{
			name:    "logs filters",
			filters: LogsFilters{ActionType: "ban_user", TargetType: "user"},
			want: url.Values{
				"action_type": {"ban_user"},
				"target_type": {"user"},
			},
		},
		{
			name:    "stats filters",
			filters: StatsFilters{StartDate: "2026-01-01", EndDate: "2026-06-30"},
			want: url.Values{
				"startDate": {"2026-01-01"},
				"endDate":   {"2026-06-30"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.filters.query()); diff != "" {
				t.Errorf("query mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
