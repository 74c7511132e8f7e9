package kafka

import (
	"context"
	"encoding/json"

	"livestock-tracker/internal/broker/messages"
	"livestock-tracker/internal/domain/activity"

	"github.com/pkg/errors"
)

type publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// IntentPublisher es un activity.Sink que publica cada intención aceptada.
// La key es el SubjectID para mantener el orden por registro.
type IntentPublisher struct {
	p     publisher
	topic string
}

func NewIntentPublisher(p *Producer, topic string) *IntentPublisher {
	return &IntentPublisher{p: p, topic: topic}
}

func (ip *IntentPublisher) Record(ctx context.Context, e activity.Event) error {
	b, err := json.Marshal(messages.Intent{
		ID:         e.ID,
		Type:       string(e.Type),
		SubjectID:  e.SubjectID,
		Summary:    e.Summary,
		OccurredAt: e.OccurredAt,
	})
	if err != nil {
		return errors.Wrap(err, "marshal intent")
	}

	key := e.SubjectID
	if key == "" {
		key = string(e.Type)
	}
	return ip.p.Publish(ctx, ip.topic, []byte(key), b)
}
