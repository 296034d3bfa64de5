package api

import (
	"context"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersService_ListForwardsFilters(t *testing.T) {
	var gotQuery url.Values
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, EndpointUsers, r.URL.Path)
		gotQuery = r.URL.Query()
		respond(w, http.StatusOK, listEnvelope([]PlatformUser{
			{ID: "u1", Email: "a@b.com", FullName: "Ada", IsBanned: false},
			{ID: "u2", Email: "c@d.com", FullName: "Cal", IsBanned: true},
		}, 42, 2, 20))
	}))
	env.loginAs(t, "admin", "admin@gurtar.com", "admin")

	banned := true
	resp, err := NewUsersService(env.client, env.cache).List(context.Background(), UsersFilters{
		Page:     2,
		Limit:    20,
		Role:     "user",
		IsBanned: &banned,
		Search:   "ada",
		Sort:     "created_at",
		Order:    SortDesc,
	})
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "20", gotQuery.Get("limit"))
	assert.Equal(t, "user", gotQuery.Get("role"))
	assert.Equal(t, "true", gotQuery.Get("is_banned"))
	assert.Equal(t, "ada", gotQuery.Get("search"))
	assert.Equal(t, "created_at", gotQuery.Get("sort"))
	assert.Equal(t, "DESC", gotQuery.Get("order"))

	require.Len(t, resp.Data, 2)
	assert.Equal(t, 42, resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestUsersService_ListIsCached(t *testing.T) {
	var hits atomic.Int64
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		respond(w, http.StatusOK, listEnvelope([]PlatformUser{{ID: "u1"}}, 1, 1, 20))
	}))
	env.loginAs(t, "admin", "admin@gurtar.com", "admin")
	users := NewUsersService(env.client, env.cache)

	_, err := users.List(context.Background(), UsersFilters{Page: 1})
	require.NoError(t, err)
	_, err = users.List(context.Background(), UsersFilters{Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 1, hits.Load(), "identical listing inside the TTL is served from cache")

	_, err = users.List(context.Background(), UsersFilters{Page: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits.Load(), "different filters are a different cache key")
}

func TestUsersService_BanRequiresReason(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation must fail before any request is sent")
	}))
	env.loginAs(t, "admin", "admin@gurtar.com", "admin")
	users := NewUsersService(env.client, env.cache)

	assert.ErrorIs(t, users.Ban(context.Background(), "u1", ""), ErrValidation)
	assert.ErrorIs(t, users.Ban(context.Background(), "u1", "   "), ErrValidation)
	assert.ErrorIs(t, users.Ban(context.Background(), "", "spam"), ErrValidation)
	assert.ErrorIs(t, users.Unban(context.Background(), "u1", "\t"), ErrValidation)
}

func TestUsersService_BanInvalidatesListing(t *testing.T) {
	var listHits atomic.Int64
	var banBody map[string]string
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == EndpointUsers:
			listHits.Add(1)
			respond(w, http.StatusOK, listEnvelope([]PlatformUser{{ID: "u1"}}, 1, 1, 20))
		case r.URL.Path == EndpointUsers+"/u1/ban":
			require.Equal(t, http.MethodPatch, r.Method)
			require.NoError(t, decodeBody(r, &banBody))
			respond(w, http.StatusOK, map[string]string{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	env.loginAs(t, "admin", "admin@gurtar.com", "admin")
	users := NewUsersService(env.client, env.cache)

	_, err := users.List(context.Background(), UsersFilters{Page: 1})
	require.NoError(t, err)
	require.NoError(t, users.Ban(context.Background(), "u1", "spam"))
	assert.Equal(t, "spam", banBody["reason"])

	_, err = users.List(context.Background(), UsersFilters{Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, listHits.Load(), "ban invalidates cached user listings")
}
