package adapter

import (
	"context"
	"testing"
	"time"

	"quizai/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectGet("quizai:extraction:text:m1").SetVal("cached text")

	val, err := cacheAdapter.Get(context.Background(), "quizai:extraction:text:m1")
	require.NoError(t, err)
	assert.Equal(t, "cached text", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectGet("missing").RedisNil()

	_, err := cacheAdapter.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectSet("k", "v", time.Hour).SetVal("OK")

	err := cacheAdapter.Set(context.Background(), "k", "v", time.Hour)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectDel("k").SetVal(1)

	err := cacheAdapter.Delete(context.Background(), "k")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
