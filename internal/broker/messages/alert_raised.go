package messages

import (
	"encoding/json"
	"errors"
	"strings"
)

// AlertRaised llega desde los trackers / geocerca externa.
type AlertRaised struct {
	AnimalID   string `json:"animal_id"`
	AnimalName string `json:"animal_name,omitempty"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp,omitempty"`

	// Status opcional: si viene, también actualiza el estado del animal.
	Status string `json:"status,omitempty"`
}

var ErrMalformed = errors.New("malformed message")

func DecodeAlertRaised(b []byte) (AlertRaised, error) {
	var m AlertRaised
	if err := json.Unmarshal(b, &m); err != nil {
		return AlertRaised{}, errors.Join(ErrMalformed, err)
	}
	if strings.TrimSpace(m.AnimalID) == "" || strings.TrimSpace(m.Type) == "" {
		return AlertRaised{}, ErrMalformed
	}
	return m, nil
}
