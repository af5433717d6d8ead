// Package cache holds large objects that are expensive to build and never
// change once built, such as lexica. A shell that reloads the same word list,
// or a server running many solvers, builds each one once.
package cache

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/xwordsolver/config"
)

type cache struct {
	sync.Mutex
	objects map[string]any
}

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

func (c *cache) get(key string) (any, bool) {
	obj, ok := c.objects[key]
	return obj, ok
}

// Load returns the object cached under key, calling loadFunc to build it
// the first time. Failed loads are not cached. The cache lock is held while
// loading, so concurrent callers never build the same object twice.
func Load[T any](cfg *config.Config, key string,
	loadFunc func(cfg *config.Config, key string) (T, error)) (T, error) {

	var zero T
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	c := GlobalObjectCache
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.get(key); ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		t, ok := obj.(T)
		if !ok {
			return zero, fmt.Errorf("cached object %s has type %T", key, obj)
		}
		return t, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	t, err := loadFunc(cfg, key)
	if err != nil {
		return zero, err
	}
	c.objects[key] = t
	return t, nil
}

// Evict drops the object cached under key, if any.
func Evict(key string) {
	if GlobalObjectCache == nil {
		return
	}
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	delete(GlobalObjectCache.objects, key)
}
