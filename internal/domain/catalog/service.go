package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(repo Repository) *Service {
	return NewServiceWithCache(repo, nil, 0)
}

func NewServiceWithCache(repo Repository, cache Cache, ttl time.Duration) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{
		repo:     repo,
		cache:    cache,
		cacheTTL: ttl,
	}
}

func (s *Service) ListMuscleGroups(ctx context.Context) ([]MuscleGroup, error) {
	return s.repo.ListMuscleGroups(ctx)
}

// ListExercises returns the whole catalog in catalog order.
func (s *Service) ListExercises(ctx context.Context) ([]Exercise, error) {
	if cached, ok := s.cache.GetExercises(); ok {
		return cached, nil
	}

	exercises, err := s.repo.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	s.cache.SetExercises(exercises, s.cacheTTL)
	return exercises, nil
}

func (s *Service) ListRestrictionRules(ctx context.Context) ([]RestrictionRule, error) {
	return s.repo.ListRestrictionRules(ctx)
}

func (s *Service) ListMuscleFocuses(ctx context.Context) ([]MuscleFocus, error) {
	return s.repo.ListMuscleFocuses(ctx)
}

// RestrictionRulesByIDs fails with ErrRestrictionRuleUnknown when any id does not exist.
func (s *Service) RestrictionRulesByIDs(ctx context.Context, ids []int64) ([]RestrictionRule, error) {
	ids = normalizeIDs(ids)
	if len(ids) == 0 {
		return []RestrictionRule{}, nil
	}

	rules, err := s.repo.GetRestrictionRulesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[int64]struct{}, len(rules))
	for _, rule := range rules {
		found[rule.ID] = struct{}{}
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrRestrictionRuleUnknown, joinIDs(missing))
	}
	return rules, nil
}

// MuscleFocusesByIDs fails with ErrMuscleFocusUnknown when any id does not exist.
func (s *Service) MuscleFocusesByIDs(ctx context.Context, ids []int64) ([]MuscleFocus, error) {
	ids = normalizeIDs(ids)
	if len(ids) == 0 {
		return []MuscleFocus{}, nil
	}

	focuses, err := s.repo.GetMuscleFocusesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[int64]struct{}, len(focuses))
	for _, focus := range focuses {
		found[focus.ID] = struct{}{}
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMuscleFocusUnknown, joinIDs(missing))
	}
	return focuses, nil
}

// Import upserts the seed in one transaction. Existing rows are matched by slug or name,
// so running it twice is a no-op.
func (s *Service) Import(ctx context.Context, seed Seed) (ImportResult, error) {
	if err := seed.Validate(); err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		groups := make([]MuscleGroup, 0, len(seed.MuscleGroups))
		for _, group := range seed.MuscleGroups {
			groups = append(groups, MuscleGroup{
				Slug: strings.TrimSpace(group.Slug),
				Name: strings.TrimSpace(group.Name),
			})
		}
		if len(groups) > 0 {
			if err := tx.UpsertMuscleGroups(ctx, groups); err != nil {
				return err
			}
		}

		exercises := make([]Exercise, 0, len(seed.Exercises))
		for _, item := range seed.Exercises {
			exercises = append(exercises, Exercise{
				Name:        strings.TrimSpace(item.Name),
				MuscleGroup: item.MuscleGroup,
				Equipment:   item.Equipment,
				IsCompound:  item.Compound,
				Difficulty:  item.Difficulty,
				Description: item.Description,
			})
		}
		if len(exercises) > 0 {
			if err := tx.UpsertExercises(ctx, exercises); err != nil {
				return err
			}
		}

		exerciseIDs := make(map[string]int64, len(exercises))
		for _, exercise := range exercises {
			exerciseIDs[exercise.Name] = exercise.ID
		}

		for _, item := range seed.RestrictionRules {
			rule := RestrictionRule{
				Slug:        item.Slug,
				Name:        item.Name,
				Description: item.Description,
			}
			if err := tx.UpsertRestrictionRule(ctx, &rule); err != nil {
				return err
			}

			ids := make([]int64, 0, len(item.Exercises))
			for _, name := range item.Exercises {
				ids = append(ids, exerciseIDs[strings.TrimSpace(name)])
			}
			if err := tx.ReplaceRuleExercises(ctx, rule.ID, normalizeIDs(ids)); err != nil {
				return err
			}
		}

		focuses := make([]MuscleFocus, 0, len(seed.MuscleFocuses))
		for _, item := range seed.MuscleFocuses {
			focuses = append(focuses, MuscleFocus{
				Slug:          item.Slug,
				Name:          item.Name,
				MuscleGroup:   item.MuscleGroup,
				PriorityDelta: item.PriorityDelta,
			})
		}
		if len(focuses) > 0 {
			if err := tx.UpsertMuscleFocuses(ctx, focuses); err != nil {
				return err
			}
		}

		result = ImportResult{
			MuscleGroups:     len(groups),
			Exercises:        len(exercises),
			RestrictionRules: len(seed.RestrictionRules),
			MuscleFocuses:    len(focuses),
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	s.cache.Clear()
	return result, nil
}

func normalizeIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return []int64{}
	}

	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func missingIDs(ids []int64, found map[int64]struct{}) []int64 {
	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ", ")
}
