// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

const (
	// keyPrefix uses a hash tag so all front end keys land in one cluster slot.
	keyPrefix = "{gujarati:frontend}:"

	// operationTimeout bounds every round trip; a slow cache is treated as a miss.
	operationTimeout = 200 * time.Millisecond
)

// Namespaces separate results of different operations for the same text.
const (
	NamespaceNormalize = "normalize"
	NamespacePhonemize = "phonemize"
)

// Cache stores results of deterministic front end operations keyed by input text.
// Failures are logged and reported as misses.
type Cache interface {
	Get(ctx context.Context, namespace, text string) (string, bool)
	Set(ctx context.Context, namespace, text, value string)
}

// Key returns the redis key for a namespaced input.
func Key(namespace, text string) string {
	sum := sha256.Sum256([]byte(text))
	return keyPrefix + namespace + ":" + hex.EncodeToString(sum[:])
}

// ScopedNamespace qualifies namespace with a fingerprint of names, such as the
// rule list that produced a result. Results of differently configured
// services therefore never share keys.
func ScopedNamespace(namespace string, names []string) string {
	sum := sha256.Sum256([]byte(strings.Join(names, ",")))
	return namespace + "@" + hex.EncodeToString(sum[:6])
}

// =============================================================================
// Redis
// =============================================================================

type redisCache struct {
	client *redis.Client
	logger commons.Logger
	ttl    time.Duration
}

// NewRedisClient connects to a single redis node.
func NewRedisClient(host string, port int, db int, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})
}

// NewRedisCache caches results in redis for ttl.
func NewRedisCache(client *redis.Client, logger commons.Logger, ttl time.Duration) Cache {
	return &redisCache{client: client, logger: logger, ttl: ttl}
}

// Ping checks the connection, used at startup to decide whether to cache at all.
func Ping(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

func (c *redisCache) Get(ctx context.Context, namespace, text string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	value, err := c.client.Get(ctx, Key(namespace, text)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		c.logger.Warnf("cache: get %s failed: %v", namespace, err)
		return "", false
	}
	return value, true
}

func (c *redisCache) Set(ctx context.Context, namespace, text, value string) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if err := c.client.Set(ctx, Key(namespace, text), value, c.ttl).Err(); err != nil {
		c.logger.Warnf("cache: set %s failed: %v", namespace, err)
	}
}

// =============================================================================
// No-op
// =============================================================================

type noopCache struct{}

// NewNoopCache never stores anything.
func NewNoopCache() Cache { return noopCache{} }

func (noopCache) Get(context.Context, string, string) (string, bool) { return "", false }
func (noopCache) Set(context.Context, string, string, string)        {}
