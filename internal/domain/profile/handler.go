package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/profile", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))
		pr.Put("/", saveProfileHandler(svc))

		pr.Get("/notifications", getPreferencesHandler(svc))
		pr.Post("/notifications/{setting}/toggle", toggleSettingHandler(svc))
	})
}

type profileDTO struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	FarmName string `json:"farm_name"`
	Location string `json:"location"`
}

type preferencesResponse struct {
	BoundaryAlerts bool `json:"boundary_alerts"`
	BatteryAlerts  bool `json:"battery_alerts"`
	MovementAlerts bool `json:"movement_alerts"`
	DailySummary   bool `json:"daily_summary"`
}

// getProfileHandler godoc
// @Summary Ver perfil
// @Tags profile
// @Produce json
// @Success 200 {object} profileDTO
// @Failure 500 {string} string "internal error"
// @Router /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toProfileDTO(p))
	}
}

// saveProfileHandler godoc
// @Summary Guardar perfil
// @Description Reemplaza el perfil completo y devuelve lo guardado.
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body profileDTO true "Perfil"
// @Success 200 {object} profileDTO
// @Failure 400 {string} string "invalid json"
// @Failure 500 {string} string "internal error"
// @Router /profile [put]
func saveProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		saved, err := svc.Save(r.Context(), UserProfile{
			Name:     req.Name,
			Phone:    req.Phone,
			Email:    req.Email,
			FarmName: req.FarmName,
			Location: req.Location,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toProfileDTO(saved))
	}
}

// getPreferencesHandler godoc
// @Summary Ver preferencias de notificación
// @Tags profile
// @Produce json
// @Success 200 {object} preferencesResponse
// @Failure 500 {string} string "internal error"
// @Router /profile/notifications [get]
func getPreferencesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetPreferences(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPreferencesResponse(p))
	}
}

// toggleSettingHandler godoc
// @Summary Invertir una preferencia
// @Tags profile
// @Produce json
// @Param setting path string true "boundary_alerts | battery_alerts | movement_alerts | daily_summary"
// @Success 200 {object} preferencesResponse
// @Failure 400 {string} string "unknown setting"
// @Failure 500 {string} string "internal error"
// @Router /profile/notifications/{setting}/toggle [post]
func toggleSettingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Toggle(r.Context(), Setting(chi.URLParam(r, "setting")))
		if err != nil {
			if errors.Is(err, ErrInvalidSetting) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPreferencesResponse(p))
	}
}

func toProfileDTO(p UserProfile) profileDTO {
	return profileDTO{
		Name:     p.Name,
		Phone:    p.Phone,
		Email:    p.Email,
		FarmName: p.FarmName,
		Location: p.Location,
	}
}

func toPreferencesResponse(p NotificationPreferences) preferencesResponse {
	return preferencesResponse{
		BoundaryAlerts: p.BoundaryAlerts,
		BatteryAlerts:  p.BatteryAlerts,
		MovementAlerts: p.MovementAlerts,
		DailySummary:   p.DailySummary,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
