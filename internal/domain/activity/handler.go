package activity

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/activity", listActivityHandler(svc))
}

// eventResponse representa una intención registrada en el historial.
type eventResponse struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	SubjectID  string    `json:"subject_id,omitempty"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

// listActivityHandler godoc
// @Summary Listar actividad reciente
// @Description Historial de intenciones aceptadas (altas, lecturas de alertas, cambios de perfil), más reciente primero.
// @Tags activity
// @Produce json
// @Param limit query int false "Máximo de eventos (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos (ej: LIVESTOCK_ADDED,ALERT_READ)"
// @Param q query string false "Texto libre sobre el resumen"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "invalid filter"
// @Failure 500 {string} string "internal error"
// @Router /activity [get]
func listActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid filter", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	filter := ListFilter{Limit: DefaultLimit}

	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > MaxLimit {
			return ListFilter{}, errors.New("limit must be between 1 and 200")
		}
		filter.Limit = n
	}

	// types=LIVESTOCK_ADDED,ALERT_READ
	if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			t := EventType(strings.ToUpper(strings.TrimSpace(p)))
			if t == "" {
				continue
			}
			if !t.Valid() {
				return ListFilter{}, errors.New("unknown activity type: " + string(t))
			}
			filter.Types = append(filter.Types, t)
		}
	}

	filter.Query = strings.TrimSpace(r.URL.Query().Get("q"))
	return filter, nil
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:         e.ID,
		Type:       e.Type,
		SubjectID:  e.SubjectID,
		Summary:    e.Summary,
		OccurredAt: e.OccurredAt,
	}
}

// writeJSON está duplicado a propósito en cada módulo (igual que en livestock/alerts).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
