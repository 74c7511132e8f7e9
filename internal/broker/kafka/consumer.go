package kafka

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Handler procesa un mensaje. Un error corta el consumo sin commitear ese mensaje.
type Handler func(ctx context.Context, key, value []byte) error

type Consumer struct {
	r messageReader
}

// NewConsumer lee topic dentro de groupID. Sin grupo kafka-go no puede commitear,
// por eso groupID es obligatorio.
func NewConsumer(brokers []string, topic, groupID string) (*Consumer, error) {
	if strings.TrimSpace(groupID) == "" {
		return nil, errors.New("kafka consumer: group id required")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("kafka consumer: topic required")
	}
	cfg := kafka.ReaderConfig{
		Brokers:           brokers,
		GroupID:           groupID,
		GroupTopics:       []string{topic},
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	}
	return &Consumer{
		r: kafka.NewReader(cfg),
	}, nil
}

func newConsumerWithReader(r messageReader) *Consumer {
	return &Consumer{r: r}
}

func (c *Consumer) Close() error {
	return c.r.Close()
}

// Consume bloquea hasta que ctx se cancela (devuelve nil) o falla fetch/handler/commit.
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	for {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "fetch message")
		}
		if err := handler(ctx, msg.Key, msg.Value); err != nil {
			// commit solo en éxito: el mensaje se vuelve a leer tras reiniciar
			return err
		}
		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "commit message")
		}
	}
}
