package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RemoteStore is a shared tier behind the in-process cache, usually Redis.
type RemoteStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// entry is what both tiers store: the encoded value and when it was fetched.
type entry struct {
	Data      []byte    `json:"data"`
	FetchedAt time.Time `json:"fetched_at"`
}

// QueryCache caches backend responses by key. Identical concurrent lookups
// share one load, and entries past staleAfter are served while a single
// background refresh replaces them.
type QueryCache struct {
	local  *gocache.Cache
	remote RemoteStore
	group  singleflight.Group

	ttl            time.Duration
	staleAfter     time.Duration
	refreshTimeout time.Duration

	refreshing sync.Map
	wg         sync.WaitGroup

	now func() time.Time
}

// New builds a cache from cfg. remote may be nil.
func New(cfg config.Cache, remote RemoteStore) *QueryCache {
	cleanup := cfg.CleanupInterval
	if cleanup <= 0 {
		cleanup = 2 * cfg.TTL
	}

	refreshTimeout := cfg.RefreshTimeout
	if refreshTimeout <= 0 {
		refreshTimeout = 20 * time.Second
	}

	return &QueryCache{
		local:          gocache.New(cfg.TTL, cleanup),
		remote:         remote,
		ttl:            cfg.TTL,
		staleAfter:     cfg.StaleAfter,
		refreshTimeout: refreshTimeout,
		now:            time.Now,
	}
}

// Loader fetches the value for a key on a miss or a refresh.
type Loader[T any] func(ctx context.Context) (T, error)

// Get returns the cached value for key, calling load on a miss.
// Load errors are returned to every waiting caller and never cached.
func Get[T any](ctx context.Context, c *QueryCache, key string, load Loader[T]) (T, error) {
	var zero T

	if c == nil || c.ttl <= 0 {
		return load(ctx)
	}

	if e, ok := c.lookup(ctx, key); ok {
		var v T
		if err := json.Unmarshal(e.Data, &v); err == nil {
			if c.isStale(e) {
				c.refresh(key, encodeLoader(load))
			}
			return v, nil
		}
		c.local.Delete(key)
	}

	// the shared load outlives any single caller; each waiter gives up on its own ctx
	ch := c.group.DoChan(key, func() (any, error) {
		if e, ok := c.lookupLocal(key); ok {
			return e.Data, nil
		}
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.refreshTimeout)
		defer cancel()
		return c.fill(loadCtx, key, encodeLoader(load))
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		var v T
		if err := json.Unmarshal(res.Val.([]byte), &v); err != nil {
			return zero, errors.Wrapf(err, "cache: decode %s", key)
		}
		return v, nil
	}
}

// Invalidate drops key from both tiers.
func (c *QueryCache) Invalidate(ctx context.Context, key string) {
	c.local.Delete(key)
	if c.remote == nil {
		return
	}
	if err := c.remote.Delete(ctx, key); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("cache: remote delete %s failed", key)
	}
}

// InvalidatePrefix drops every key starting with prefix.
func (c *QueryCache) InvalidatePrefix(ctx context.Context, prefix string) {
	for key := range c.local.Items() {
		if strings.HasPrefix(key, prefix) {
			c.local.Delete(key)
		}
	}
	if c.remote == nil {
		return
	}
	if err := c.remote.DeletePrefix(ctx, prefix); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("cache: remote prefix delete %s failed", prefix)
	}
}

// Len is the number of entries held in process.
func (c *QueryCache) Len() int {
	return c.local.ItemCount()
}

// Close waits for background refreshes and releases the remote tier.
func (c *QueryCache) Close() error {
	c.wg.Wait()
	if c.remote != nil {
		return c.remote.Close()
	}
	return nil
}

func encodeLoader[T any](load Loader[T]) func(ctx context.Context) ([]byte, error) {
	return func(ctx context.Context) ([]byte, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	}
}

func (c *QueryCache) isStale(e entry) bool {
	return c.staleAfter > 0 && c.now().Sub(e.FetchedAt) >= c.staleAfter
}

func (c *QueryCache) lookupLocal(key string) (entry, bool) {
	raw, ok := c.local.Get(key)
	if !ok {
		return entry{}, false
	}
	e := raw.(entry)
	if c.now().Sub(e.FetchedAt) >= c.ttl {
		c.local.Delete(key)
		return entry{}, false
	}
	return e, true
}

func (c *QueryCache) lookup(ctx context.Context, key string) (entry, bool) {
	if e, ok := c.lookupLocal(key); ok {
		return e, true
	}
	if c.remote == nil {
		return entry{}, false
	}

	data, found, err := c.remote.Get(ctx, key)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warnf("cache: remote get %s failed", key)
		return entry{}, false
	}
	if !found {
		return entry{}, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil || c.now().Sub(e.FetchedAt) >= c.ttl {
		return entry{}, false
	}

	c.local.Set(key, e, c.ttl-c.now().Sub(e.FetchedAt))
	return e, true
}

func (c *QueryCache) fill(ctx context.Context, key string, load func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	data, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, entry{Data: data, FetchedAt: c.now()})
	return data, nil
}

func (c *QueryCache) store(ctx context.Context, key string, e entry) {
	c.local.Set(key, e, c.ttl)
	if c.remote == nil {
		return
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := c.remote.Set(ctx, key, payload, c.ttl); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("cache: remote set %s failed", key)
	}
}

func (c *QueryCache) refresh(key string, load func(ctx context.Context) ([]byte, error)) {
	if _, running := c.refreshing.LoadOrStore(key, struct{}{}); running {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer c.refreshing.Delete(key)

		ctx, cancel := context.WithTimeout(context.Background(), c.refreshTimeout)
		defer cancel()

		if _, err := c.fill(ctx, key, load); err != nil {
			log.L.WithError(err).Warnf("cache: background refresh of %s failed", key)
		}
	}()
}
