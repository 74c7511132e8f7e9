package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"livestock-tracker/internal/domain/activity"
)

var (
	ErrNotFound       = errors.New("profile not found")
	ErrInvalidSetting = errors.New("setting must be boundary_alerts, battery_alerts, movement_alerts or daily_summary")
)

type Service struct {
	repo Repository
	sink activity.Sink
}

func NewService(repo Repository, sink activity.Sink) *Service {
	if sink == nil {
		sink = activity.Discard
	}
	return &Service{repo: repo, sink: sink}
}

// Get devuelve el perfil guardado o el perfil por defecto.
func (s *Service) Get(ctx context.Context) (UserProfile, error) {
	p, err := s.repo.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return DefaultProfile(), nil
	}
	return p, err
}

// Save reemplaza el perfil completo.
func (s *Service) Save(ctx context.Context, p UserProfile) (UserProfile, error) {
	p = UserProfile{
		Name:     strings.TrimSpace(p.Name),
		Phone:    strings.TrimSpace(p.Phone),
		Email:    strings.TrimSpace(p.Email),
		FarmName: strings.TrimSpace(p.FarmName),
		Location: strings.TrimSpace(p.Location),
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return UserProfile{}, err
	}

	_ = s.sink.Record(ctx, activity.Event{
		Type:    activity.EventTypeProfileSaved,
		Summary: fmt.Sprintf("profile saved for %s", p.FarmName),
	})
	return p, nil
}

func (s *Service) GetPreferences(ctx context.Context) (NotificationPreferences, error) {
	p, err := s.repo.GetPreferences(ctx)
	if errors.Is(err, ErrNotFound) {
		return DefaultPreferences(), nil
	}
	return p, err
}

// Toggle invierte un único setting y devuelve las preferencias resultantes.
func (s *Service) Toggle(ctx context.Context, setting Setting) (NotificationPreferences, error) {
	setting = Setting(strings.ToLower(strings.TrimSpace(string(setting))))
	if !setting.Valid() {
		return NotificationPreferences{}, ErrInvalidSetting
	}

	current, err := s.GetPreferences(ctx)
	if err != nil {
		return NotificationPreferences{}, err
	}
	next := current.Toggle(setting)
	if err := s.repo.SavePreferences(ctx, next); err != nil {
		return NotificationPreferences{}, err
	}

	state := "off"
	if next.Enabled(setting) {
		state = "on"
	}
	_ = s.sink.Record(ctx, activity.Event{
		Type:      activity.EventTypeNotificationToggled,
		SubjectID: string(setting),
		Summary:   fmt.Sprintf("%s turned %s", setting, state),
	})
	return next, nil
}
