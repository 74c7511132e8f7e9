package dashboard

import (
	"encoding/json"
	"net/http"

	"livestock-tracker/internal/domain/alerts"
	"livestock-tracker/internal/domain/livestock"
	"livestock-tracker/internal/domain/mapview"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, maps *mapview.Service) {
	r.Get("/dashboard", getDashboardHandler(svc, maps))
}

// dashboardResponse agrupa lo que muestra la página principal.
type dashboardResponse struct {
	Summary Summary                 `json:"summary"`
	Alerts  []alerts.AlertResponse  `json:"alerts"`
	Map     mapview.MarkersResponse `json:"map"`
}

// getDashboardHandler godoc
// @Summary Dashboard
// @Description Resumen del rebaño, panel de alertas (todas, en orden de llegada) y marcadores del mapa.
// @Tags dashboard
// @Produce json
// @Param strategy query string false "percent | mercator (default percent)"
// @Success 200 {object} dashboardResponse
// @Failure 400 {string} string "invalid strategy"
// @Failure 500 {string} string "internal error"
// @Router /dashboard [get]
func getDashboardHandler(svc *Service, maps *mapview.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		strategy, err := mapview.ParseStrategy(r.URL.Query().Get("strategy"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sum, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		recent, err := svc.RecentAlerts(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		markers, err := maps.Markers(r.Context(), livestock.ListFilter{}, strategy)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, dashboardResponse{
			Summary: sum,
			Alerts:  alerts.ToResponses(recent),
			Map:     mapview.ToResponse(markers, strategy),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
