package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Seed is the on-disk catalog description consumed by Import.
// Restriction rules reference exercises by name so the file stays independent of database ids.
type Seed struct {
	MuscleGroups     []MuscleGroup         `yaml:"muscle_groups"`
	Exercises        []SeedExercise        `yaml:"exercises"`
	RestrictionRules []SeedRestrictionRule `yaml:"restriction_rules"`
	MuscleFocuses    []SeedMuscleFocus     `yaml:"muscle_focuses"`
}

type SeedExercise struct {
	Name        string `yaml:"name"`
	MuscleGroup string `yaml:"muscle_group"`
	Equipment   string `yaml:"equipment"`
	Compound    bool   `yaml:"compound"`
	Difficulty  string `yaml:"difficulty"`
	Description string `yaml:"description"`
}

type SeedRestrictionRule struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Exercises   []string `yaml:"exercises"`
}

type SeedMuscleFocus struct {
	Slug          string `yaml:"slug"`
	Name          string `yaml:"name"`
	MuscleGroup   string `yaml:"muscle_group"`
	PriorityDelta int    `yaml:"priority_delta"`
}

func LoadSeed(path string) (Seed, error) {
	file, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("open catalog seed: %w", err)
	}
	defer file.Close()

	return ParseSeed(file)
}

func ParseSeed(r io.Reader) (Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return Seed{}, fmt.Errorf("%w: empty document", ErrInvalidSeed)
		}
		return Seed{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return seed, nil
}

func (s Seed) Validate() error {
	groups := make(map[string]struct{}, len(s.MuscleGroups))
	for _, group := range s.MuscleGroups {
		slug := strings.TrimSpace(group.Slug)
		if slug == "" || strings.TrimSpace(group.Name) == "" {
			return fmt.Errorf("%w: muscle group slug and name are required", ErrInvalidSeed)
		}
		if _, ok := groups[slug]; ok {
			return fmt.Errorf("%w: duplicate muscle group %q", ErrInvalidSeed, slug)
		}
		groups[slug] = struct{}{}
	}

	exercises := make(map[string]struct{}, len(s.Exercises))
	for _, exercise := range s.Exercises {
		name := strings.TrimSpace(exercise.Name)
		if name == "" {
			return fmt.Errorf("%w: exercise name is required", ErrInvalidSeed)
		}
		if _, ok := exercises[name]; ok {
			return fmt.Errorf("%w: duplicate exercise %q", ErrInvalidSeed, name)
		}
		if _, ok := groups[exercise.MuscleGroup]; !ok {
			return fmt.Errorf("%w: exercise %q references unknown muscle group %q", ErrInvalidSeed, name, exercise.MuscleGroup)
		}
		exercises[name] = struct{}{}
	}

	rules := make(map[string]struct{}, len(s.RestrictionRules))
	for _, rule := range s.RestrictionRules {
		if rule.Slug == "" || rule.Name == "" {
			return fmt.Errorf("%w: restriction rule slug and name are required", ErrInvalidSeed)
		}
		if _, ok := rules[rule.Slug]; ok {
			return fmt.Errorf("%w: duplicate restriction rule %q", ErrInvalidSeed, rule.Slug)
		}
		rules[rule.Slug] = struct{}{}
		for _, name := range rule.Exercises {
			if _, ok := exercises[strings.TrimSpace(name)]; !ok {
				return fmt.Errorf("%w: restriction rule %q references unknown exercise %q", ErrInvalidSeed, rule.Slug, name)
			}
		}
	}

	focuses := make(map[string]struct{}, len(s.MuscleFocuses))
	for _, focus := range s.MuscleFocuses {
		if focus.Slug == "" || focus.Name == "" {
			return fmt.Errorf("%w: muscle focus slug and name are required", ErrInvalidSeed)
		}
		if _, ok := focuses[focus.Slug]; ok {
			return fmt.Errorf("%w: duplicate muscle focus %q", ErrInvalidSeed, focus.Slug)
		}
		if _, ok := groups[focus.MuscleGroup]; !ok {
			return fmt.Errorf("%w: muscle focus %q references unknown muscle group %q", ErrInvalidSeed, focus.Slug, focus.MuscleGroup)
		}
		focuses[focus.Slug] = struct{}{}
	}

	return nil
}
