package handler

import (
	"net/http"

	catalogdomain "progym-go/internal/domain/catalog"
)

type muscleGroupResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type exerciseResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Equipment   string `json:"equipment"`
	IsCompound  bool   `json:"is_compound"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
}

type restrictionRuleResponse struct {
	ID          int64   `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ExerciseIDs []int64 `json:"exercise_ids"`
}

type muscleFocusResponse struct {
	ID            int64  `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	MuscleGroup   string `json:"muscle_group"`
	PriorityDelta int    `json:"priority_delta"`
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

func (h *Handlers) ListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Catalog.ListMuscleGroups(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "catalog: list muscle groups failed", err)
		return
	}

	items := make([]muscleGroupResponse, 0, len(groups))
	for _, group := range groups {
		items = append(items, muscleGroupResponse{Slug: group.Slug, Name: group.Name})
	}
	writeJSON(w, http.StatusOK, itemsResponse[muscleGroupResponse]{Items: items})
}

func (h *Handlers) ListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.Catalog.ListExercises(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "catalog: list exercises failed", err)
		return
	}

	muscleGroup := r.URL.Query().Get("muscle_group")
	items := make([]exerciseResponse, 0, len(exercises))
	for _, exercise := range exercises {
		if muscleGroup != "" && exercise.MuscleGroup != muscleGroup {
			continue
		}
		items = append(items, toExerciseResponse(exercise))
	}
	writeJSON(w, http.StatusOK, itemsResponse[exerciseResponse]{Items: items})
}

func (h *Handlers) ListRestrictionRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.Catalog.ListRestrictionRules(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "catalog: list restriction rules failed", err)
		return
	}

	items := make([]restrictionRuleResponse, 0, len(rules))
	for _, rule := range rules {
		items = append(items, toRestrictionRuleResponse(rule))
	}
	writeJSON(w, http.StatusOK, itemsResponse[restrictionRuleResponse]{Items: items})
}

func (h *Handlers) ListMuscleFocuses(w http.ResponseWriter, r *http.Request) {
	focuses, err := h.Catalog.ListMuscleFocuses(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "catalog: list muscle focuses failed", err)
		return
	}

	items := make([]muscleFocusResponse, 0, len(focuses))
	for _, focus := range focuses {
		items = append(items, toMuscleFocusResponse(focus))
	}
	writeJSON(w, http.StatusOK, itemsResponse[muscleFocusResponse]{Items: items})
}

func toExerciseResponse(exercise catalogdomain.Exercise) exerciseResponse {
	return exerciseResponse{
		ID:          exercise.ID,
		Name:        exercise.Name,
		MuscleGroup: exercise.MuscleGroup,
		Equipment:   exercise.Equipment,
		IsCompound:  exercise.IsCompound,
		Difficulty:  exercise.Difficulty,
		Description: exercise.Description,
	}
}

func toRestrictionRuleResponse(rule catalogdomain.RestrictionRule) restrictionRuleResponse {
	ids := rule.ExerciseIDs
	if ids == nil {
		ids = []int64{}
	}
	return restrictionRuleResponse{
		ID:          rule.ID,
		Slug:        rule.Slug,
		Name:        rule.Name,
		Description: rule.Description,
		ExerciseIDs: ids,
	}
}

func toMuscleFocusResponse(focus catalogdomain.MuscleFocus) muscleFocusResponse {
	return muscleFocusResponse{
		ID:            focus.ID,
		Slug:          focus.Slug,
		Name:          focus.Name,
		MuscleGroup:   focus.MuscleGroup,
		PriorityDelta: focus.PriorityDelta,
	}
}
