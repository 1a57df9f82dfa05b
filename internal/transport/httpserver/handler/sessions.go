package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	sessiondomain "progym-go/internal/domain/session"
)

type startSessionRequest struct {
	PlanID   string `json:"plan_id"`
	DayIndex int    `json:"day_index"`
}

type completeSetRequest struct {
	RepsDone     *int     `json:"reps_done"`
	WeightLifted *float64 `json:"weight_lifted"`
}

type sessionResponse struct {
	ID              string        `json:"id"`
	WorkoutPlanID   *string       `json:"workout_plan_id"`
	Status          string        `json:"status"`
	StartedAt       time.Time     `json:"started_at"`
	CompletedAt     *time.Time    `json:"completed_at"`
	DurationMinutes *int          `json:"duration_minutes"`
	Days            []dayResponse `json:"days"`
}

type dayResponse struct {
	ID          string                    `json:"id"`
	PlanDayName string                    `json:"plan_day_name"`
	Order       int                       `json:"order"`
	Status      string                    `json:"status"`
	Exercises   []sessionExerciseResponse `json:"exercises"`
}

type sessionExerciseResponse struct {
	ID               string        `json:"id"`
	PlanExerciseName string        `json:"plan_exercise_name"`
	MuscleGroup      string        `json:"muscle_group"`
	RestSeconds      int           `json:"rest_seconds"`
	Order            int           `json:"order"`
	Status           string        `json:"status"`
	Sets             []setResponse `json:"sets"`
}

type setResponse struct {
	ID           string   `json:"id"`
	Order        int      `json:"order"`
	Status       string   `json:"status"`
	PlanRepsMin  *int     `json:"plan_reps_min"`
	PlanRepsMax  *int     `json:"plan_reps_max"`
	PlanWeight   *float64 `json:"plan_weight"`
	RepsDone     *int     `json:"reps_done"`
	WeightLifted *float64 `json:"weight_lifted"`
}

func (h *Handlers) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	planID := strings.TrimSpace(req.PlanID)
	if planID != "" {
		if _, err := uuid.Parse(planID); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan_id")
			return
		}
	}

	tree, err := h.Sessions.Start(r.Context(), sessiondomain.StartInput{
		UserID:   userID,
		PlanID:   planID,
		DayIndex: req.DayIndex,
	})
	if err != nil {
		h.writeServiceError(w, r, "sessions: start rejected", err)
		return
	}

	h.log.Info("sessions: started", "session_id", tree.ID, "user_id", userID, "day_index", req.DayIndex)
	writeJSON(w, http.StatusCreated, toSessionResponse(tree))
}

func (h *Handlers) GetActiveSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	tree, err := h.Sessions.GetActive(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sessiondomain.ErrNoActiveSession) {
			writeError(w, http.StatusNotFound, "no_active_session", "no active session")
			return
		}
		h.writeServiceError(w, r, "sessions: get active failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(tree))
}

func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	tree, err := h.Sessions.Get(r.Context(), userID, sessionID)
	if err != nil {
		h.writeServiceError(w, r, "sessions: get failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(tree))
}

func (h *Handlers) CompleteSet(w http.ResponseWriter, r *http.Request) {
	setID, ok := uuidParam(w, r, "set_id")
	if !ok {
		return
	}

	var req completeSetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.RepsDone == nil || req.WeightLifted == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "reps_done and weight_lifted are required")
		return
	}

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	set, err := h.Sessions.CompleteSet(r.Context(), sessiondomain.CompleteSetInput{
		UserID:       userID,
		SetID:        setID,
		RepsDone:     *req.RepsDone,
		WeightLifted: *req.WeightLifted,
	})
	if err != nil {
		h.writeServiceError(w, r, "sessions: complete set rejected", err)
		return
	}
	writeJSON(w, http.StatusOK, toSetResponse(*set))
}

func (h *Handlers) SkipSet(w http.ResponseWriter, r *http.Request) {
	setID, ok := uuidParam(w, r, "set_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	set, err := h.Sessions.SkipSet(r.Context(), userID, setID)
	if err != nil {
		h.writeServiceError(w, r, "sessions: skip set rejected", err)
		return
	}
	writeJSON(w, http.StatusOK, toSetResponse(*set))
}

func (h *Handlers) FinishSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	tree, err := h.Sessions.Finish(r.Context(), userID, sessionID)
	if err != nil {
		h.writeServiceError(w, r, "sessions: finish rejected", err)
		return
	}

	h.log.Info("sessions: finished", "session_id", tree.ID, "user_id", userID, "duration_minutes", tree.DurationMinutes)
	writeJSON(w, http.StatusOK, toSessionResponse(tree))
}

func (h *Handlers) CancelSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := h.Sessions.Cancel(r.Context(), userID, sessionID); err != nil {
		h.writeServiceError(w, r, "sessions: cancel rejected", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	parsed, err := uuid.Parse(value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid "+name)
		return "", false
	}
	return parsed.String(), true
}

func toSessionResponse(tree *sessiondomain.Tree) sessionResponse {
	response := sessionResponse{
		ID:              tree.ID,
		WorkoutPlanID:   tree.WorkoutPlanID,
		Status:          string(tree.Status),
		StartedAt:       tree.StartedAt,
		CompletedAt:     tree.CompletedAt,
		DurationMinutes: tree.DurationMinutes,
		Days:            make([]dayResponse, 0, len(tree.Days)),
	}

	for _, day := range tree.Days {
		dayItem := dayResponse{
			ID:          day.ID,
			PlanDayName: day.PlanDayName,
			Order:       day.Order,
			Status:      string(day.Status),
			Exercises:   make([]sessionExerciseResponse, 0, len(day.Exercises)),
		}
		for _, exercise := range day.Exercises {
			exerciseItem := sessionExerciseResponse{
				ID:               exercise.ID,
				PlanExerciseName: exercise.PlanExerciseName,
				MuscleGroup:      exercise.MuscleGroup,
				RestSeconds:      exercise.RestSeconds,
				Order:            exercise.Order,
				Status:           string(exercise.Status),
				Sets:             make([]setResponse, 0, len(exercise.Sets)),
			}
			for _, set := range exercise.Sets {
				exerciseItem.Sets = append(exerciseItem.Sets, toSetResponse(set))
			}
			dayItem.Exercises = append(dayItem.Exercises, exerciseItem)
		}
		response.Days = append(response.Days, dayItem)
	}
	return response
}

func toSetResponse(set sessiondomain.SessionSet) setResponse {
	return setResponse{
		ID:           set.ID,
		Order:        set.Order,
		Status:       string(set.Status),
		PlanRepsMin:  set.PlanRepsMin,
		PlanRepsMax:  set.PlanRepsMax,
		PlanWeight:   set.PlanWeight,
		RepsDone:     set.RepsDone,
		WeightLifted: set.WeightLifted,
	}
}
