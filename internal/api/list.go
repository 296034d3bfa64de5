package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gurtar/gurtarctl/internal/httpclient"
)

// fetchList runs a cached list GET and decodes the {data, meta} envelope.
func fetchList[T any](ctx context.Context, client *httpclient.Client, cache *Cache, path string, query url.Values) (*ListResponse[T], error) {
	key := path
	if enc := query.Encode(); enc != "" {
		key += "?" + enc
	}

	if data, ok := cache.Get(key); ok {
		var out ListResponse[T]
		if err := json.Unmarshal(data, &out); err == nil {
			return &out, nil
		}
	}

	data, err := client.GetRaw(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var out ListResponse[T]
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	cache.Set(key, data)
	return &out, nil
}
