package alerts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/alerts", func(ar chi.Router) {
		ar.Get("/", listAlertsHandler(svc))
		ar.Post("/read-all", markAllReadHandler(svc))
		ar.Post("/{alertID}/read", markReadHandler(svc))
	})
}

// AlertResponse representa una alerta del feed.
type AlertResponse struct {
	ID         string    `json:"id"`
	AnimalID   string    `json:"animal_id"`
	AnimalName string    `json:"animal_name"`
	Type       Type      `json:"type"`
	Message    string    `json:"message"`
	Timestamp  string    `json:"timestamp"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// listAlertsResponse incluye el contador del badge y si corresponde ofrecer "marcar todas".
type listAlertsResponse struct {
	Items       []AlertResponse `json:"items"`
	UnreadCount int             `json:"unread_count"`
	HasUnread   bool            `json:"has_unread"`
}

type markAllReadResponse struct {
	Marked int `json:"marked"`
}

// listAlertsHandler godoc
// @Summary Listar alertas
// @Description Feed de alertas en orden de llegada. Filtra por texto (animal o mensaje), tipo y pestaña (all/unread/read).
// @Tags alerts
// @Produce json
// @Param q query string false "Texto libre"
// @Param type query string false "boundary | movement | battery | offline | all"
// @Param view query string false "all | unread | read"
// @Success 200 {object} listAlertsResponse
// @Failure 400 {string} string "invalid filter"
// @Failure 500 {string} string "internal error"
// @Router /alerts [get]
func listAlertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		view := View(strings.ToLower(strings.TrimSpace(q.Get("view"))))
		if view == "" {
			view = ViewAll
		}

		items, err := svc.List(r.Context(), ListFilter{
			Query: q.Get("q"),
			Type:  q.Get("type"),
			View:  view,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidType) || errors.Is(err, ErrInvalidView) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		unread, err := svc.UnreadCount(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, listAlertsResponse{
			Items:       ToResponses(items),
			UnreadCount: unread,
			HasUnread:   unread > 0,
		})
	}
}

// markReadHandler godoc
// @Summary Marcar alerta como leída
// @Description Un id desconocido no es error (no-op).
// @Tags alerts
// @Param alertID path string true "ID de la alerta"
// @Success 204
// @Failure 500 {string} string "internal error"
// @Router /alerts/{alertID}/read [post]
func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.MarkRead(r.Context(), chi.URLParam(r, "alertID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// markAllReadHandler godoc
// @Summary Marcar todas como leídas
// @Tags alerts
// @Produce json
// @Success 200 {object} markAllReadResponse
// @Failure 500 {string} string "internal error"
// @Router /alerts/read-all [post]
func markAllReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.MarkAllRead(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, markAllReadResponse{Marked: n})
	}
}

// ToResponses lo reutiliza el dashboard (AlertsPanel).
func ToResponses(items []Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AlertResponse{
			ID:         a.ID,
			AnimalID:   a.AnimalID,
			AnimalName: a.AnimalName,
			Type:       a.Type,
			Message:    a.Message,
			Timestamp:  a.Timestamp,
			Read:       a.Read,
			CreatedAt:  a.CreatedAt,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
