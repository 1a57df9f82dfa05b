package handler

import (
	"net/http"
	"time"

	profiledomain "progym-go/internal/domain/profile"
)

type profileRequest struct {
	Username        string   `json:"username"`
	Weight          *float64 `json:"weight"`
	Height          *int     `json:"height"`
	Age             *int     `json:"age"`
	FitnessGoal     *string  `json:"fitness_goal"`
	ExperienceLevel *string  `json:"experience_level"`
	WorkoutsPerWeek *int     `json:"workouts_per_week"`
	SessionDuration *int     `json:"session_duration"`
}

type profileResponse struct {
	UserID          string    `json:"user_id"`
	Username        string    `json:"username"`
	Weight          *float64  `json:"weight"`
	Height          *int      `json:"height"`
	Age             *int      `json:"age"`
	FitnessGoal     *string   `json:"fitness_goal"`
	ExperienceLevel *string   `json:"experience_level"`
	WorkoutsPerWeek *int      `json:"workouts_per_week"`
	SessionDuration *int      `json:"session_duration"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type preferencesRequest struct {
	RestrictionRuleIDs []int64 `json:"restriction_rule_ids"`
	MuscleFocusIDs     []int64 `json:"muscle_focus_ids"`
}

type preferencesResponse struct {
	RestrictionRuleIDs []int64 `json:"restriction_rule_ids"`
	MuscleFocusIDs     []int64 `json:"muscle_focus_ids"`
}

func (h *Handlers) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.Profiles.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, "profiles: get failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(*profile))
}

func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.Profiles.UpdateProfile(r.Context(), profiledomain.UpdateProfileInput{
		UserID:          userID,
		Username:        req.Username,
		Weight:          req.Weight,
		Height:          req.Height,
		Age:             req.Age,
		FitnessGoal:     req.FitnessGoal,
		ExperienceLevel: req.ExperienceLevel,
		WorkoutsPerWeek: req.WorkoutsPerWeek,
		SessionDuration: req.SessionDuration,
	})
	if err != nil {
		h.writeServiceError(w, r, "profiles: update failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(*profile))
}

func (h *Handlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	prefs, err := h.Profiles.GetPreferences(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, "profiles: get preferences failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toPreferencesResponse(prefs))
}

func (h *Handlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	prefs, err := h.Profiles.UpdatePreferences(r.Context(), profiledomain.UpdatePreferencesInput{
		UserID:             userID,
		RestrictionRuleIDs: req.RestrictionRuleIDs,
		MuscleFocusIDs:     req.MuscleFocusIDs,
	})
	if err != nil {
		h.writeServiceError(w, r, "profiles: update preferences failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toPreferencesResponse(prefs))
}

func toProfileResponse(profile profiledomain.Profile) profileResponse {
	return profileResponse{
		UserID:          profile.UserID,
		Username:        profile.Username,
		Weight:          profile.Weight,
		Height:          profile.Height,
		Age:             profile.Age,
		FitnessGoal:     profile.FitnessGoal,
		ExperienceLevel: profile.ExperienceLevel,
		WorkoutsPerWeek: profile.WorkoutsPerWeek,
		SessionDuration: profile.SessionDuration,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

func toPreferencesResponse(prefs profiledomain.Preferences) preferencesResponse {
	response := preferencesResponse{
		RestrictionRuleIDs: prefs.RestrictionRuleIDs,
		MuscleFocusIDs:     prefs.MuscleFocusIDs,
	}
	if response.RestrictionRuleIDs == nil {
		response.RestrictionRuleIDs = []int64{}
	}
	if response.MuscleFocusIDs == nil {
		response.MuscleFocusIDs = []int64{}
	}
	return response
}
