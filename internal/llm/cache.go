package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingClient memoizes successful responses of an inner Client. Failed
// calls are never cached.
type CachingClient struct {
	inner Client
	model string
	cache *lru.Cache[string, GenerateResponse]
}

// NewCachingClient wraps inner with an LRU cache holding up to size entries.
func NewCachingClient(inner Client, model string, size int) (*CachingClient, error) {
	cache, err := lru.New[string, GenerateResponse](size)
	if err != nil {
		return nil, fmt.Errorf("creating response cache: %w", err)
	}
	return &CachingClient{inner: inner, model: model, cache: cache}, nil
}

func (c *CachingClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	key := c.key(req)
	if resp, ok := c.cache.Get(key); ok {
		resp.LatencyMs = 0
		return &resp, nil
	}
	resp, err := c.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, *resp)
	return resp, nil
}

func (c *CachingClient) Available(ctx context.Context) bool {
	return c.inner.Available(ctx)
}

// Len reports the number of cached responses.
func (c *CachingClient) Len() int { return c.cache.Len() }

func (c *CachingClient) key(req GenerateRequest) string {
	h := sha256.New()
	for _, part := range []string{
		c.model,
		string(req.Task),
		req.SystemPrompt,
		req.UserPrompt,
		optFloat(req.Temperature),
		optInt(req.MaxTokens),
		strconv.FormatBool(req.JSON),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func optFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
