package alerts

import (
	"context"
	"errors"

	"livestock-tracker/internal/broker/messages"
	"livestock-tracker/internal/domain/livestock"
	"livestock-tracker/internal/platform/logger"
)

// Ingestor convierte mensajes AlertRaised del broker en alertas.
type Ingestor struct {
	svc *Service
	log logger.Logger
}

func NewIngestor(svc *Service, log logger.Logger) *Ingestor {
	if log == nil {
		log = logger.Nop()
	}
	return &Ingestor{svc: svc, log: log}
}

// Handle tiene la firma del handler del consumer Kafka.
// Un mensaje inválido se loguea y se descarta (nil) para que el offset avance;
// solo los errores de almacenamiento detienen el consumo.
func (in *Ingestor) Handle(ctx context.Context, key, value []byte) error {
	msg, err := messages.DecodeAlertRaised(value)
	if err != nil {
		in.log.Warn("discarding malformed alert message", map[string]any{"key": string(key), "err": err})
		return nil
	}

	typ, err := ParseType(msg.Type)
	if err != nil {
		in.log.Warn("discarding alert with unknown type", map[string]any{"animal_id": msg.AnimalID, "type": msg.Type})
		return nil
	}

	var status livestock.Status
	if msg.Status != "" {
		st, err := livestock.ParseStatus(msg.Status)
		if err != nil {
			in.log.Warn("ignoring unknown animal status", map[string]any{"animal_id": msg.AnimalID, "status": msg.Status})
		} else {
			status = st
		}
	}

	a, err := in.svc.Raise(ctx, RaiseInput{
		AnimalID:   msg.AnimalID,
		AnimalName: msg.AnimalName,
		Type:       typ,
		Message:    msg.Message,
		Timestamp:  msg.Timestamp,
		Status:     status,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			in.log.Warn("discarding invalid alert", map[string]any{"animal_id": msg.AnimalID, "err": err})
			return nil
		}
		return err
	}

	in.log.Info("alert ingested", map[string]any{"alert_id": a.ID, "animal_id": a.AnimalID, "type": string(a.Type)})
	return nil
}
