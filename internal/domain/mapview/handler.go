package mapview

import (
	"encoding/json"
	"errors"
	"net/http"

	"livestock-tracker/internal/domain/livestock"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/map", func(mr chi.Router) {
		mr.Get("/markers", markersHandler(svc))
		mr.Post("/select", selectHandler(svc))
	})
}

type StyleResponse struct {
	Fill        string `json:"fill"`
	Stroke      string `json:"stroke"`
	StrokeWidth int    `json:"stroke_width"`
	Radius      int    `json:"radius"`
}

type MarkerResponse struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Type   livestock.Type   `json:"type"`
	Status livestock.Status `json:"status"`
	X      float64          `json:"x"`
	Y      float64          `json:"y"`
	Style  StyleResponse    `json:"style"`
}

type ViewResponse struct {
	CenterLatitude  float64 `json:"center_latitude"`
	CenterLongitude float64 `json:"center_longitude"`
	Zoom            float64 `json:"zoom"`
}

type MarkersResponse struct {
	Strategy   Strategy         `json:"strategy"`
	View       ViewResponse     `json:"view"`
	Markers    []MarkerResponse `json:"markers"`
	SelectedID string           `json:"selected_animal_id,omitempty"`
}

type selectRequest struct {
	ID string `json:"id"`
}

// markersHandler godoc
// @Summary Marcadores del mapa
// @Description Ubica los animales con posición. percent normaliza al bounding box [0,100]; mercator proyecta a EPSG:3857.
// @Tags map
// @Produce json
// @Param strategy query string false "percent | mercator (default percent)"
// @Param type query string false "cow | sheep | goat | all"
// @Param status query string false "normal | alert | outside | all"
// @Success 200 {object} MarkersResponse
// @Failure 400 {string} string "invalid filter"
// @Failure 500 {string} string "internal error"
// @Router /map/markers [get]
func markersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		strategy, err := ParseStrategy(q.Get("strategy"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := svc.Markers(r.Context(), livestock.ListFilter{Type: q.Get("type"), Status: q.Get("status")}, strategy)
		if err != nil {
			if errors.Is(err, livestock.ErrInvalidType) || errors.Is(err, livestock.ErrInvalidStatus) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(res, strategy))
	}
}

// selectHandler godoc
// @Summary Seleccionar animal en el mapa
// @Description Registra la selección en el dashboard y devuelve el encuadre centrado en el animal (zoom 12).
// @Tags map
// @Accept json
// @Produce json
// @Param payload body selectRequest true "Animal"
// @Success 200 {object} ViewResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "animal not found"
// @Router /map/select [post]
func selectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.Select(r.Context(), req.ID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "animal not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toViewResponse(v))
	}
}

func ToResponse(res MarkersResult, strategy Strategy) MarkersResponse {
	out := MarkersResponse{
		Strategy:   strategy,
		View:       toViewResponse(res.View),
		Markers:    make([]MarkerResponse, 0, len(res.Markers)),
		SelectedID: res.SelectedID,
	}
	for _, m := range res.Markers {
		out.Markers = append(out.Markers, MarkerResponse{
			ID:     m.ID,
			Name:   m.Name,
			Type:   m.Type,
			Status: m.Status,
			X:      m.X,
			Y:      m.Y,
			Style: StyleResponse{
				Fill:        m.Style.Fill,
				Stroke:      m.Style.Stroke,
				StrokeWidth: m.Style.StrokeWidth,
				Radius:      m.Style.Radius,
			},
		})
	}
	return out
}

func toViewResponse(v View) ViewResponse {
	return ViewResponse{CenterLatitude: v.CenterLatitude, CenterLongitude: v.CenterLongitude, Zoom: v.Zoom}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
