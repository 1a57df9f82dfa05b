package inmemory

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	catalogdomain "progym-go/internal/domain/catalog"
)

const (
	exercisesKey         = "exercises"
	catalogCleanupPeriod = 10 * time.Minute
)

// InMemoryCatalogCache keeps the exercise catalog in process memory. Callers always get
// their own copy of the slice.
type InMemoryCatalogCache struct {
	items *gocache.Cache
}

func NewInMemoryCatalogCache() *InMemoryCatalogCache {
	return &InMemoryCatalogCache{
		items: gocache.New(gocache.NoExpiration, catalogCleanupPeriod),
	}
}

func (c *InMemoryCatalogCache) GetExercises() ([]catalogdomain.Exercise, bool) {
	value, ok := c.items.Get(exercisesKey)
	if !ok {
		return nil, false
	}
	exercises, ok := value.([]catalogdomain.Exercise)
	if !ok {
		return nil, false
	}
	return cloneExercises(exercises), true
}

func (c *InMemoryCatalogCache) SetExercises(exercises []catalogdomain.Exercise, ttl time.Duration) {
	if ttl <= 0 {
		c.Clear()
		return
	}
	c.items.Set(exercisesKey, cloneExercises(exercises), ttl)
}

func (c *InMemoryCatalogCache) Clear() {
	c.items.Flush()
}

func cloneExercises(exercises []catalogdomain.Exercise) []catalogdomain.Exercise {
	if exercises == nil {
		return nil
	}
	cloned := make([]catalogdomain.Exercise, len(exercises))
	copy(cloned, exercises)
	return cloned
}
