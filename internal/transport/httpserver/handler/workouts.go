package handler

import (
	"net/http"
	"time"

	plandomain "progym-go/internal/domain/plan"
)

type planResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	SplitType   string           `json:"split_type"`
	Days        []plandomain.Day `json:"days"`
	GeneratedAt time.Time        `json:"generated_at"`
}

func (h *Handlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	plan, err := h.Plans.GeneratePlan(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, "workouts: generate failed", err)
		return
	}
	h.writePlan(w, r, http.StatusCreated, plan)
}

func (h *Handlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	plan, err := h.Plans.GetPlan(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, "workouts: get failed", err)
		return
	}
	h.writePlan(w, r, http.StatusOK, plan)
}

func (h *Handlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := h.Plans.DeletePlan(r.Context(), userID); err != nil {
		h.writeServiceError(w, r, "workouts: delete failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writePlan(w http.ResponseWriter, r *http.Request, status int, plan *plandomain.WorkoutPlan) {
	days, err := plan.DecodeDays()
	if err != nil {
		h.writeServiceError(w, r, "workouts: decode failed", err)
		return
	}

	writeJSON(w, status, planResponse{
		ID:          plan.ID,
		Name:        plan.Name,
		SplitType:   plan.SplitType,
		Days:        days,
		GeneratedAt: plan.GeneratedAt,
	})
}
