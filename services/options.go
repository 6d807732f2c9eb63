package services

import (
	"context"
	"time"

	"github.com/yeremiapane/crm-backend/cache"
	"github.com/yeremiapane/crm-backend/events"
	"github.com/yeremiapane/crm-backend/utils"
)

type options struct {
	now       func() time.Time
	cache     cache.DashboardCache
	publisher events.Publisher
}

type Option func(*options)

// WithClock replaces time.Now for every timestamp the services write or
// compare against.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithCache enables read-through caching of dashboard stats.
func WithCache(c cache.DashboardCache) Option {
	return func(o *options) { o.cache = c }
}

func WithPublisher(p events.Publisher) Option {
	return func(o *options) { o.publisher = p }
}

func buildOptions(opts []Option) options {
	o := options{
		now:       time.Now,
		publisher: events.Nop{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) emit(ctx context.Context, eventType string, id uint, data interface{}) {
	events.Emit(ctx, o.publisher, events.Event{
		Type:       eventType,
		ID:         id,
		Data:       data,
		OccurredAt: o.now(),
	})
}

// cachedStats fills dest from the cache when possible, otherwise calls load
// and stores the result. Cache failures only get logged.
func (o options) cachedStats(ctx context.Context, key string, dest interface{}, load func() error) error {
	if o.cache != nil {
		found, err := o.cache.Get(ctx, key, dest)
		if err != nil {
			utils.ErrorLogger.Printf("Dashboard cache read failed for %s: %v", key, err)
		} else if found {
			return nil
		}
	}

	if err := load(); err != nil {
		return err
	}

	if o.cache != nil {
		if err := o.cache.Set(ctx, key, dest); err != nil {
			utils.ErrorLogger.Printf("Dashboard cache write failed for %s: %v", key, err)
		}
	}
	return nil
}

func (o options) invalidate(ctx context.Context, key string) {
	if o.cache == nil {
		return
	}
	if err := o.cache.Invalidate(ctx, key); err != nil {
		utils.ErrorLogger.Printf("Dashboard cache invalidation failed for %s: %v", key, err)
	}
}
