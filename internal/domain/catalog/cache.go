package catalog

import "time"

type Cache interface {
	GetExercises() ([]Exercise, bool)
	SetExercises(exercises []Exercise, ttl time.Duration)
	Clear()
}

type noopCache struct{}

func (noopCache) GetExercises() ([]Exercise, bool) {
	return nil, false
}

func (noopCache) SetExercises([]Exercise, time.Duration) {}

func (noopCache) Clear() {}
