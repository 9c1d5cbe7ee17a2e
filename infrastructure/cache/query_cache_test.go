package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/pkg/log"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}}
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	return d, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

func (m *memoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryStore) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func (m *memoryStore) Close() error { return nil }

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestCache(remote RemoteStore) (*QueryCache, *clock) {
	log.SetupTestLogger()
	clk := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := New(config.Cache{TTL: 10 * time.Minute, StaleAfter: time.Minute}, remote)
	c.now = clk.Now
	return c, clk
}

func counterLoader(calls *int32, value string) Loader[[]string] {
	return func(ctx context.Context) ([]string, error) {
		n := atomic.AddInt32(calls, 1)
		return []string{value, string(rune('0' + n))}, nil
	}
}

func TestGet_CachesWithinTTL(t *testing.T) {
	c, _ := newTestCache(nil)
	var calls int32

	first, err := Get(context.Background(), c, "customers:all", counterLoader(&calls, "a"))
	require.NoError(t, err)
	second, err := Get(context.Background(), c, "customers:all", counterLoader(&calls, "a"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_ExpiredEntryReloads(t *testing.T) {
	c, clk := newTestCache(nil)
	var calls int32

	_, err := Get(context.Background(), c, "k", counterLoader(&calls, "a"))
	require.NoError(t, err)

	clk.Advance(11 * time.Minute)

	v, err := Get(context.Background(), c, "k", counterLoader(&calls, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "2"}, v)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGet_ConcurrentCallersShareOneLoad(t *testing.T) {
	c, _ := newTestCache(nil)
	var calls int32
	release := make(chan struct{})

	load := func(ctx context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Get(context.Background(), c, "summary", load)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestGet_StaleEntryServedThenRefreshed(t *testing.T) {
	c, clk := newTestCache(nil)
	var calls int32

	v, err := Get(context.Background(), c, "k", counterLoader(&calls, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "1"}, v)

	clk.Advance(2 * time.Minute)

	v, err = Get(context.Background(), c, "k", counterLoader(&calls, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "1"}, v, "stale value is served immediately")

	c.wg.Wait()

	v, err = Get(context.Background(), c, "k", counterLoader(&calls, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "2"}, v)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGet_ErrorsAreNotCached(t *testing.T) {
	c, _ := newTestCache(nil)
	boom := errors.New("backend down")

	_, err := Get(context.Background(), c, "k", func(ctx context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	v, err := Get(context.Background(), c, "k", func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestGet_CancelledCallerReturnsContextError(t *testing.T) {
	c, _ := newTestCache(nil)
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get(ctx, c, "slow", func(context.Context) (int, error) {
		<-release
		return 1, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGet_SharedLoadSurvivesFirstCallerCancel(t *testing.T) {
	c, _ := newTestCache(nil)
	started := make(chan struct{})
	release := make(chan struct{})

	load := func(ctx context.Context) (string, error) {
		close(started)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-release:
			return "ACC-9", nil
		}
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := Get(firstCtx, c, "customer:ACC-9", load)
		firstErr <- err
	}()
	<-started

	secondVal := make(chan string, 1)
	secondErr := make(chan error, 1)
	go func() {
		v, err := Get(context.Background(), c, "customer:ACC-9", load)
		secondVal <- v
		secondErr <- err
	}()

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	require.NoError(t, <-secondErr)
	assert.Equal(t, "ACC-9", <-secondVal)
}

func TestInvalidate(t *testing.T) {
	remote := newMemoryStore()
	c, _ := newTestCache(remote)
	var calls int32
	ctx := context.Background()

	_, _ = Get(ctx, c, "recommendations:C1", counterLoader(&calls, "r"))
	_, _ = Get(ctx, c, "recommendations:C2", counterLoader(&calls, "r"))
	_, _ = Get(ctx, c, "alerts:C1", counterLoader(&calls, "a"))

	c.Invalidate(ctx, "alerts:C1")
	_, ok, _ := remote.Get(ctx, "alerts:C1")
	assert.False(t, ok)

	c.InvalidatePrefix(ctx, "recommendations:")
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, remote.data)
}

func TestGet_FillsFromRemoteTier(t *testing.T) {
	remote := newMemoryStore()
	warm, _ := newTestCache(remote)
	var calls int32

	_, err := Get(context.Background(), warm, "opcos", counterLoader(&calls, "o"))
	require.NoError(t, err)

	cold, _ := newTestCache(remote)
	v, err := Get(context.Background(), cold, "opcos", counterLoader(&calls, "o"))
	require.NoError(t, err)

	assert.Equal(t, []string{"o", "1"}, v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_DisabledCacheAlwaysLoads(t *testing.T) {
	c := New(config.Cache{}, nil)
	var calls int32

	_, _ = Get(context.Background(), c, "k", counterLoader(&calls, "a"))
	_, _ = Get(context.Background(), c, "k", counterLoader(&calls, "a"))

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
