package repository

import (
	"context"
	"testing"
	"time"

	"delivery_cart/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis starts a miniredis server and returns a repository on it.
func setupTestRedis(t *testing.T) (*SessionStateRedisRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStateRedisRepository(client), mr
}

func sampleState() entities.SessionState {
	loc := entities.NewLocation()
	loc.Neighborhood = entities.NewNeighborhood("7", "Granada", 3000)
	return entities.SessionState{
		ID:      "s-1",
		Version: 3,
		Cart: []entities.LineItem{
			{Signature: `p1-[]`, ProductID: "p1", UnitPrice: 10000, Quantity: 2, Modifiers: []entities.Modifier{}, ComboComponents: []entities.ComboComponent{}},
		},
		AppliedCoupon:        &entities.Coupon{Code: "TEN", Percent: 10},
		CouponUI:             &entities.CouponUI{Enabled: true, Code: "TEN"},
		OrderNotes:           "no onions",
		Location:             &loc,
		CurrentDeliveryPrice: 3000,
		UpdatedAt:            time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestSessionStateRedisRepository_SaveLoad(t *testing.T) {
	repo, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleState()))
	assert.True(t, mr.Exists("session:s-1"))

	ttl := mr.TTL("session:s-1")
	assert.GreaterOrEqual(t, ttl, defaultSessionTTL)
	assert.Less(t, ttl, defaultSessionTTL+time.Hour)

	want := sampleState()
	got, err := repo.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Version, got.Version)
	assert.Equal(t, want.Cart, got.Cart)
	assert.Equal(t, want.AppliedCoupon, got.AppliedCoupon)
	assert.Equal(t, want.CouponUI, got.CouponUI)
	assert.Equal(t, want.OrderNotes, got.OrderNotes)
	assert.Equal(t, want.Location, got.Location)
	assert.Equal(t, want.CurrentDeliveryPrice, got.CurrentDeliveryPrice)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

func TestSessionStateRedisRepository_LoadMissing(t *testing.T) {
	repo, _ := setupTestRedis(t)

	got, err := repo.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "", got.ID)
}

func TestSessionStateRedisRepository_LoadCorrupt(t *testing.T) {
	repo, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("session:bad", "{not json"))

	_, err := repo.Load(context.Background(), "bad")
	assert.Error(t, err)
}

func TestSessionStateRedisRepository_TTLFromEnv(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "2")
	repo, mr := setupTestRedis(t)

	require.NoError(t, repo.Save(context.Background(), sampleState()))
	ttl := mr.TTL("session:s-1")
	assert.GreaterOrEqual(t, ttl, 2*time.Hour)
	assert.Less(t, ttl, 3*time.Hour)
}
