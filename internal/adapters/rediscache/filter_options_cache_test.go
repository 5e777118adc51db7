package rediscache

import (
	"car-catalog-service/internal/core/domain"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string]string
	getErr error
	setErr error

	lastTTL time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = string(value.([]byte))
	f.lastTTL = expiration
	return redis.NewStatusResult("OK", nil)
}

type countingObserver map[string]int

func (o countingObserver) CacheLookup(result string) { o[result]++ }

func TestFilterOptionsCache_MissThenHit(t *testing.T) {
	client := newFakeRedis()
	observer := countingObserver{}
	cache, err := NewFilterOptionsCache(client, 5*time.Minute, observer)
	require.NoError(t, err)
	ctx := context.Background()

	got, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	series := "A3"
	options := &domain.FilterOptions{
		Brands: []domain.ValueCount{{Value: "Audi", Count: 12}},
		Models: []domain.ModelOption{{Model: "A3 Sedan", Brand: "Audi", Series: &series, Count: 4}},
		Cities: []domain.ValueCount{{Value: "İstanbul", Count: 7}},
	}
	require.NoError(t, cache.Set(ctx, options))
	assert.Equal(t, 5*time.Minute, client.lastTTL)

	got, ok, err = cache.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, options.Brands, got.Brands)
	assert.Equal(t, options.Models, got.Models)
	assert.Equal(t, options.Cities, got.Cities)

	assert.Equal(t, 1, observer["miss"])
	assert.Equal(t, 1, observer["hit"])
}

func TestFilterOptionsCache_ReadErrorIsReturned(t *testing.T) {
	client := newFakeRedis()
	client.getErr = errors.New("connection refused")
	observer := countingObserver{}
	cache, err := NewFilterOptionsCache(client, time.Minute, observer)
	require.NoError(t, err)

	_, ok, err := cache.Get(context.Background())
	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection refused")
	assert.Equal(t, 1, observer["error"])
}

func TestFilterOptionsCache_UndecodablePayloadIsAMiss(t *testing.T) {
	client := newFakeRedis()
	client.values[filterOptionsKey] = "{not json"
	cache, err := NewFilterOptionsCache(client, time.Minute, nil)
	require.NoError(t, err)

	got, ok, err := cache.Get(context.Background())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestFilterOptionsCache_WriteError(t *testing.T) {
	client := newFakeRedis()
	client.setErr = errors.New("READONLY")
	cache, err := NewFilterOptionsCache(client, time.Minute, nil)
	require.NoError(t, err)

	err = cache.Set(context.Background(), &domain.FilterOptions{})
	assert.ErrorContains(t, err, "READONLY")
}

func TestNewFilterOptionsCache_Validation(t *testing.T) {
	_, err := NewFilterOptionsCache(nil, time.Minute, nil)
	assert.Error(t, err)

	_, err = NewFilterOptionsCache(newFakeRedis(), 0, nil)
	assert.Error(t, err)
}
