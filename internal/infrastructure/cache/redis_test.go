package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/cache"
)

func newTestCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisCache(client, time.Minute), mr
}

func TestRedisCache_SetGet_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	views := []repository.DepotStockView{
		{DepotID: 1, DepotName: "Central", Products: []repository.DepotProductView{
			{ID: 7, Name: "Yerba Mate 1kg", Stock: 25},
		}},
	}
	require.NoError(t, c.Set(ctx, "productos:por-deposito", views))

	var got []repository.DepotStockView
	require.NoError(t, c.Get(ctx, "productos:por-deposito", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Central", got[0].DepotName)
	require.Len(t, got[0].Products, 1)
	assert.Equal(t, int64(25), got[0].Products[0].Stock)
}

func TestRedisCache_Get_ClaveInexistente(t *testing.T) {
	c, _ := newTestCache(t)

	var dest []repository.DepotStockView
	err := c.Get(context.Background(), "no-existe", &dest)
	assert.ErrorIs(t, err, inventory.ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v"))
	require.NoError(t, c.Delete(ctx, "k"))

	var dest string
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), inventory.ErrCacheMiss)
}

func TestRedisCache_TTL_Expira(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v"))
	mr.FastForward(2 * time.Minute)

	var dest string
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), inventory.ErrCacheMiss)
}
