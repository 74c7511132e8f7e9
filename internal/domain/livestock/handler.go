package livestock

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/livestock", func(lr chi.Router) {
		lr.Get("/", listLivestockHandler(svc))
		lr.Post("/", addLivestockHandler(svc))
		lr.Get("/{animalID}", getAnimalHandler(svc))

		// Simula el evento externo que cambia el estado (tracker / geocerca externa)
		lr.Put("/{animalID}/status", setStatusHandler(svc))
	})
}

// addLivestockRequest es el formulario de alta. latitude/longitude son opcionales.
type addLivestockRequest struct {
	Name      string   `json:"name"`
	Type      Type     `json:"type" enums:"cow,sheep,goat"`
	Age       string   `json:"age"`
	TagID     string   `json:"tag_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type setStatusRequest struct {
	Status   Status `json:"status" enums:"normal,alert,outside"`
	LastSeen string `json:"last_seen"`
}

// AnimalResponse representa un animal del rebaño devuelto por la API.
type AnimalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	Age       string    `json:"age"`
	TagID     string    `json:"tag_id"`
	Status    Status    `json:"status"`
	LastSeen  string    `json:"last_seen"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// listLivestockHandler godoc
// @Summary Listar animales
// @Description Lista el rebaño en orden de alta. Filtra por nombre (sin distinguir mayúsculas), tipo y estado; "all" desactiva un filtro.
// @Tags livestock
// @Produce json
// @Param q query string false "Texto libre sobre el nombre"
// @Param type query string false "cow | sheep | goat | all"
// @Param status query string false "normal | alert | outside | all"
// @Success 200 {array} AnimalResponse
// @Failure 400 {string} string "invalid filter"
// @Failure 500 {string} string "internal error"
// @Router /livestock [get]
func listLivestockHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Query:  q.Get("q"),
			Type:   q.Get("type"),
			Status: q.Get("status"),
		})
		if err != nil {
			if errors.Is(err, ErrInvalidType) || errors.Is(err, ErrInvalidStatus) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]AnimalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, ToResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// addLivestockHandler godoc
// @Summary Registrar animal
// @Description Alta de un animal. name y tag_id son requeridos; type por defecto cow. Nace con status normal y last_seen "Just now".
// @Tags livestock
// @Accept json
// @Produce json
// @Param payload body addLivestockRequest true "Formulario de alta"
// @Success 201 {object} AnimalResponse
// @Failure 400 {string} string "please fill in all required fields"
// @Failure 500 {string} string "internal error"
// @Router /livestock [post]
func addLivestockHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addLivestockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var pos *Position
		if req.Latitude != nil || req.Longitude != nil {
			if req.Latitude == nil || req.Longitude == nil {
				http.Error(w, "latitude and longitude must be sent together", http.StatusBadRequest)
				return
			}
			pos = &Position{Latitude: *req.Latitude, Longitude: *req.Longitude}
		}

		form := AddForm{Name: req.Name, Type: req.Type, Age: req.Age, TagID: req.TagID}

		var created Animal
		err := form.Submit(func(in AddInput) error {
			in.Position = pos
			a, err := svc.Add(r.Context(), in)
			if err != nil {
				return err
			}
			created = a
			return nil
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingRequired), errors.Is(err, ErrInvalidType):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "invalid position", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(created))
	}
}

// getAnimalHandler godoc
// @Summary Ver animal
// @Tags livestock
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} AnimalResponse
// @Failure 404 {string} string "animal not found"
// @Router /livestock/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "animal not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(a))
	}
}

// setStatusHandler godoc
// @Summary Actualizar estado
// @Description Aplica un evento externo de estado (normal, alert, outside). last_seen por defecto "Just now".
// @Tags livestock
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body setStatusRequest true "Nuevo estado"
// @Success 200 {object} AnimalResponse
// @Failure 400 {string} string "status must be normal, alert or outside"
// @Failure 404 {string} string "animal not found"
// @Router /livestock/{animalID}/status [put]
func setStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.SetStatus(r.Context(), chi.URLParam(r, "animalID"), req.Status, req.LastSeen)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidStatus):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(a))
	}
}

// ToResponse es exportado porque el dashboard reutiliza la misma forma.
func ToResponse(a Animal) AnimalResponse {
	out := AnimalResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		Age:       a.Age,
		TagID:     a.TagID,
		Status:    a.Status,
		LastSeen:  a.LastSeen,
		CreatedAt: a.CreatedAt,
	}
	if a.Position != nil {
		lat, lng := a.Position.Latitude, a.Position.Longitude
		out.Latitude = &lat
		out.Longitude = &lng
	}
	return out
}

// writeJSON está duplicado a propósito en cada módulo; todavía no justifica un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
