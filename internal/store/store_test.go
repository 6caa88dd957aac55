package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	type rec struct {
		Name string `json:"name"`
	}

	ok, err := kv.Get(ctx, "missing", &rec{})
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, kv.Set(ctx, "k", rec{Name: "pasta"}))

	var got rec
	ok, err = kv.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pasta", got.Name)

	assert.NoError(t, kv.Delete(ctx, "k"))
	ok, _ = kv.Get(ctx, "k", &got)
	assert.False(t, ok)
}

func TestMemoryKVMalformedValueReadsAsAbsent(t *testing.T) {
	kv := NewMemoryKV()
	kv.SetRaw("bad", []byte("{not json"))

	var out map[string]string
	ok, err := kv.Get(context.Background(), "bad", &out)
	assert.NoError(t, err)
	assert.False(t, ok)
}
