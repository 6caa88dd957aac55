package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkcast/backend/internal/store"
	"github.com/forkcast/backend/internal/types"
)

func TestPrefsRoundTrip(t *testing.T) {
	kv := store.NewMemoryKV()
	svc := NewPrefsService(kv)
	ctx := context.Background()

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, got)

	want := types.UserPreferences{
		LikedAreas:      []string{"Japanese", "Thai"},
		LikedCategories: []string{"Seafood"},
		Diets:           []string{"Dairy-Free"},
		Dislikes:        []string{"cilantro"},
	}
	require.NoError(t, svc.Put(ctx, "u1", want))

	got, err = svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPrefsMalformedValueReadsAsAbsent(t *testing.T) {
	kv := store.NewMemoryKV()
	kv.SetRaw(prefsKey("u1"), []byte("{not json"))
	svc := NewPrefsService(kv)

	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, got)
}
