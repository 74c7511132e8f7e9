// Package seed carga el rebaño y las alertas de demo con los que arranca el servicio.
package seed

import (
	"context"
	"fmt"
	"time"

	"livestock-tracker/internal/domain/alerts"
	"livestock-tracker/internal/domain/livestock"
	"livestock-tracker/internal/domain/profile"
)

type Repos struct {
	Livestock livestock.Repository
	Alerts    alerts.Repository
	Profile   profile.Repository
}

// Animals devuelve el rebaño de demo. Fluffy no tiene posición y no aparece en el mapa.
func Animals(now time.Time) []livestock.Animal {
	at := func(lat, lng float64) *livestock.Position {
		return &livestock.Position{Latitude: lat, Longitude: lng}
	}
	return []livestock.Animal{
		{ID: "1", Name: "Bella", Type: livestock.TypeCow, Age: "3 years", TagID: "TAG-001", Status: livestock.StatusNormal, LastSeen: "10 minutes ago", Position: at(-32.8710, 27.8120), CreatedAt: now},
		{ID: "2", Name: "Woolly", Type: livestock.TypeSheep, Age: "2 years", TagID: "TAG-002", Status: livestock.StatusAlert, LastSeen: "5 minutes ago", Position: at(-32.8950, 27.8560), CreatedAt: now},
		{ID: "3", Name: "Jumper", Type: livestock.TypeGoat, Age: "1 year", TagID: "TAG-003", Status: livestock.StatusOutside, LastSeen: "2 minutes ago", Position: at(-32.9120, 27.8790), CreatedAt: now},
		{ID: "4", Name: "Daisy", Type: livestock.TypeCow, Age: "4 years", TagID: "TAG-004", Status: livestock.StatusNormal, LastSeen: "15 minutes ago", Position: at(-32.8800, 27.8300), CreatedAt: now},
		{ID: "5", Name: "Fluffy", Type: livestock.TypeSheep, Age: "1.5 years", TagID: "TAG-005", Status: livestock.StatusNormal, LastSeen: "8 minutes ago", CreatedAt: now},
	}
}

func Alerts(now time.Time) []alerts.Alert {
	return []alerts.Alert{
		{ID: "a1", AnimalID: "2", AnimalName: "Woolly", Type: alerts.TypeBoundary, Message: "Animal has crossed the farm boundary", Timestamp: "Today, 14:32", CreatedAt: now},
		{ID: "a2", AnimalID: "3", AnimalName: "Jumper", Type: alerts.TypeMovement, Message: "Unusual movement detected", Timestamp: "Today, 13:15", CreatedAt: now},
		{ID: "a3", AnimalID: "1", AnimalName: "Bella", Type: alerts.TypeBattery, Message: "Tracker battery low (15%)", Timestamp: "Yesterday, 18:45", Read: true, CreatedAt: now},
		{ID: "a4", AnimalID: "4", AnimalName: "Daisy", Type: alerts.TypeOffline, Message: "Tracker has been offline for 2 hours", Timestamp: "Yesterday, 12:20", Read: true, CreatedAt: now},
		{ID: "a5", AnimalID: "5", AnimalName: "Fluffy", Type: alerts.TypeBoundary, Message: "Animal is approaching the farm boundary", Timestamp: "2 days ago, 09:15", Read: true, CreatedAt: now},
	}
}

// Load escribe directo en los repos (sin pasar por los servicios) para conservar ids y estados
// y no generar actividad. El caller decide si el store está vacío.
func Load(ctx context.Context, r Repos, now time.Time) error {
	now = now.UTC()

	for _, a := range Animals(now) {
		if err := r.Livestock.Append(ctx, a); err != nil {
			return fmt.Errorf("seed animal %s: %w", a.ID, err)
		}
	}
	for _, a := range Alerts(now) {
		if err := r.Alerts.Append(ctx, a); err != nil {
			return fmt.Errorf("seed alert %s: %w", a.ID, err)
		}
	}

	if r.Profile != nil {
		if err := r.Profile.Save(ctx, profile.DefaultProfile()); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
		if err := r.Profile.SavePreferences(ctx, profile.DefaultPreferences()); err != nil {
			return fmt.Errorf("seed preferences: %w", err)
		}
	}
	return nil
}
