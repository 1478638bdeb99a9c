// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

func newLogger(t *testing.T) commons.Logger {
	t.Helper()
	logger, err := commons.NewApplicationLogger(commons.WithLevel("error"))
	require.NoError(t, err)
	return logger
}

func TestKey(t *testing.T) {
	k := Key(NamespaceNormalize, "૧૨")
	assert.True(t, strings.HasPrefix(k, "{gujarati:frontend}:normalize:"))
	assert.Len(t, strings.TrimPrefix(k, "{gujarati:frontend}:normalize:"), 64)
	assert.Equal(t, k, Key(NamespaceNormalize, "૧૨"))
	assert.NotEqual(t, k, Key(NamespacePhonemize, "૧૨"))
}

func TestScopedNamespace(t *testing.T) {
	full := ScopedNamespace(NamespaceNormalize, []string{"unicode", "validate", "cardinal"})
	subset := ScopedNamespace(NamespaceNormalize, []string{"unicode", "whitespace"})

	assert.True(t, strings.HasPrefix(full, NamespaceNormalize+"@"))
	assert.Len(t, strings.TrimPrefix(full, NamespaceNormalize+"@"), 12)
	assert.NotEqual(t, full, subset)
	assert.Equal(t, full, ScopedNamespace(NamespaceNormalize, []string{"unicode", "validate", "cardinal"}))
	assert.NotEqual(t, Key(full, "૨૩"), Key(subset, "૨૩"))
}

func TestRedisCache_Hit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client, newLogger(t), time.Hour)

	mock.ExpectGet(Key(NamespaceNormalize, "૧૨")).SetVal("બાર")

	value, ok := c.Get(context.Background(), NamespaceNormalize, "૧૨")
	assert.True(t, ok)
	assert.Equal(t, "બાર", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client, newLogger(t), time.Hour)

	mock.ExpectGet(Key(NamespaceNormalize, "૧૨")).RedisNil()

	_, ok := c.Get(context.Background(), NamespaceNormalize, "૧૨")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_ErrorIsMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client, newLogger(t), time.Hour)

	mock.ExpectGet(Key(NamespacePhonemize, "કેમ")).SetErr(errors.New("connection refused"))

	_, ok := c.Get(context.Background(), NamespacePhonemize, "કેમ")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client, newLogger(t), 10*time.Minute)

	mock.ExpectSet(Key(NamespaceNormalize, "૧૨"), "બાર", 10*time.Minute).SetVal("OK")

	c.Set(context.Background(), NamespaceNormalize, "૧૨", "બાર")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, Ping(context.Background(), client))

	mock.ExpectPing().SetErr(errors.New("down"))
	assert.Error(t, Ping(context.Background(), client))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	c.Set(context.Background(), NamespaceNormalize, "a", "b")
	_, ok := c.Get(context.Background(), NamespaceNormalize, "a")
	assert.False(t, ok)
}
