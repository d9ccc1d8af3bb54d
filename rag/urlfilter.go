package rag

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// URLFilter is an optional Redis-backed Bloom filter over indexed
// article URLs, used to avoid writing duplicate chunks when the same
// article is fetched again. Uses RedisBloom BF.* commands.
type URLFilter struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewURLFilterFromEnv builds a URLFilter when REDIS_ADDR is set and
// returns (nil, nil) otherwise, leaving indexing append-only with
// duplicates allowed. Optional: REDIS_PASS, URL_FILTER_KEY,
// URL_FILTER_TTL_SECONDS.
func NewURLFilterFromEnv() (*URLFilter, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	key := os.Getenv("URL_FILTER_KEY")
	if key == "" {
		key = "newsrag:indexed_urls"
	}

	ttl := 7 * 24 * time.Hour
	if t := os.Getenv("URL_FILTER_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &URLFilter{client: client, key: key, ttl: ttl}, nil
}

// Seen reports whether the URL has probably been indexed before.
func (f *URLFilter) Seen(rawURL string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := f.client.Do(ctx, "BF.EXISTS", f.key, hashURL(rawURL)).Result()
	if err != nil {
		return false, err
	}

	switch v := res.(type) {
	case int64:
		return v == 1, nil
	case string:
		return v == "1", nil
	default:
		return false, fmt.Errorf("unexpected BF.EXISTS response type %T: %v", res, res)
	}
}

// Record marks the URL as indexed and refreshes the filter's TTL so it
// stays alive for ttl after the most recent insertion.
func (f *URLFilter) Record(rawURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := f.client.Do(ctx, "BF.ADD", f.key, hashURL(rawURL)).Err(); err != nil {
		return err
	}
	return f.client.Expire(ctx, f.key, f.ttl).Err()
}

// Close closes the underlying Redis client.
func (f *URLFilter) Close() error {
	return f.client.Close()
}

func hashURL(rawURL string) string {
	h := sha256.Sum256([]byte(normalizeURL(rawURL)))
	return hex.EncodeToString(h[:])
}

// normalizeURL canonicalizes a URL before hashing: lowercased scheme and
// host, no fragment, common tracking parameters removed, no trailing slash.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || lk == "fbclid" || lk == "gclid" {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	return strings.TrimRight(u.String(), "/")
}
