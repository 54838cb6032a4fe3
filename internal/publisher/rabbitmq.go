package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"homescripts/internal/domain"
)

const (
	EventArticleArchived = "article.archived"
	EventRecordUpdated   = "record.updated"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    channel
	exchange   string
	routingKey string
	logger     *slog.Logger
	now        func() time.Time
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// declare sets up a durable direct exchange with one bound queue.
func declare(ch *amqp.Channel, cfg Config) error {
	err := ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

type ArticleMessage struct {
	Event     string                 `json:"event"`
	Article   domain.ArchivedArticle `json:"article"`
	Timestamp time.Time              `json:"timestamp"`
}

type RecordMessage struct {
	Event     string              `json:"event"`
	Change    domain.RecordChange `json:"change"`
	Timestamp time.Time           `json:"timestamp"`
}

func (r *RabbitMQ) PublishArticle(ctx context.Context, article *domain.ArchivedArticle) error {
	msg := ArticleMessage{
		Event:     EventArticleArchived,
		Article:   *article,
		Timestamp: r.now().UTC(),
	}
	if err := r.publish(ctx, msg.Event, msg); err != nil {
		return err
	}

	r.logger.Debug("published article", "news_id", article.NewsID)
	return nil
}

// PublishChanges emits one event per changed record.
func (r *RabbitMQ) PublishChanges(ctx context.Context, changes []domain.RecordChange) error {
	for _, c := range changes {
		msg := RecordMessage{
			Event:     EventRecordUpdated,
			Change:    c,
			Timestamp: r.now().UTC(),
		}
		if err := r.publish(ctx, msg.Event, msg); err != nil {
			return err
		}
		r.logger.Debug("published record change", "record_id", c.RecordID)
	}
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, event string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         event,
			Body:         body,
			Timestamp:    r.now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event, err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
