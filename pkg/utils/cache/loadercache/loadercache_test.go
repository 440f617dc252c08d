package loadercache

import (
	"context"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestGetUsesLoaderOncePerKey(t *testing.T) {
	calls := 0
	c := New(
		WithExpiration[string, int](time.Minute),
		WithLoader(func(key string) (*int, error) {
			calls++
			ret := len(key)
			return &ret, nil
		}))
	ctx := context.Background()

	v, err := c.Get(ctx, "abc")
	assert.NilError(t, err)
	assert.Equal(t, 3, *v)
	_, err = c.Get(ctx, "abc")
	assert.NilError(t, err)
	assert.Equal(t, 1, calls)

	_, err = c.Get(ctx, "other")
	assert.NilError(t, err)
	assert.Equal(t, 2, calls)
}

func TestExpiredEntryIsReloaded(t *testing.T) {
	calls := 0
	c := New(
		WithExpiration[string, int](time.Millisecond),
		WithLoader(func(key string) (*int, error) {
			calls++
			ret := calls
			return &ret, nil
		}))
	ctx := context.Background()

	_, err := c.Get(ctx, "key")
	assert.NilError(t, err)
	time.Sleep(5 * time.Millisecond)
	v, err := c.Get(ctx, "key")
	assert.NilError(t, err)
	assert.Equal(t, 2, *v)
}

func TestInvalidate(t *testing.T) {
	calls := 0
	c := New(
		WithExpiration[string, int](time.Minute),
		WithLoader(func(key string) (*int, error) {
			calls++
			ret := calls
			return &ret, nil
		}))
	ctx := context.Background()

	_, _ = c.Get(ctx, "a")
	_, _ = c.Get(ctx, "b")
	c.Invalidate(ctx, "a")
	_, _ = c.Get(ctx, "a")
	assert.Equal(t, 3, calls)

	c.InvalidateAll(ctx)
	_, _ = c.Get(ctx, "a")
	_, _ = c.Get(ctx, "b")
	assert.Equal(t, 5, calls)
}
