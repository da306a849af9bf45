package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func TestNew_NoAddrDisablesRedis(t *testing.T) {
	c := New("", "", 0)
	assert.False(t, c.Enabled())
	assert.NoError(t, c.Delete(context.Background(), "admin-stats"))
	assert.NoError(t, c.Close())

	var nilCache *Cache
	assert.False(t, nilCache.Enabled())
}

func TestGetOrLoadJSON_WithoutRedis(t *testing.T) {
	c := New("", "", 0)
	calls := 0

	got, err := GetOrLoadJSON(context.Background(), c, "posts", time.Minute, func(ctx context.Context) ([]post, error) {
		calls++
		return []post{{ID: 1, Title: "hello"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []post{{ID: 1, Title: "hello"}}, got)
	assert.Equal(t, 1, calls)
}

func TestGetOrLoadJSON_ErrorNotCached(t *testing.T) {
	c := New("", "", 0)
	boom := errors.New("upstream down")

	_, err := GetOrLoadJSON(context.Background(), c, "k", time.Minute, func(ctx context.Context) (post, error) {
		return post{}, boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := GetOrLoadJSON(context.Background(), c, "k", time.Minute, func(ctx context.Context) (post, error) {
		return post{ID: 2}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)
}

func TestGetOrLoad_SingleflightDedupes(t *testing.T) {
	c := New("", "", 0)
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := c.GetOrLoad(context.Background(), "same", time.Minute, func(ctx context.Context) ([]byte, error) {
				calls.Add(1)
				<-release
				return []byte("v"), nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "v", string(b))
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(8))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}
