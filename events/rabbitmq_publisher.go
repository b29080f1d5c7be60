package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Acciones que se publican
const (
	ActionCreate = "create"
	ActionDelete = "delete"
)

// Message representa un evento sobre una entidad
type Message struct {
	Action     string    `json:"action"` // "create", "delete"
	Entity     string    `json:"entity"` // "user", "personaje", "planeta", "favorito"
	EntityID   uint      `json:"entity_id"`
	UserID     uint      `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewMessage arma un mensaje con la hora actual
func NewMessage(action, entity string, entityID, userID uint) Message {
	return Message{
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher publica eventos del dominio
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// amqpChannel es la parte de *amqp.Channel que usa el publisher
type amqpChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publica los eventos en una queue durable de RabbitMQ
type RabbitMQPublisher struct {
	connection *amqp.Connection
	channel    amqpChannel
	queueName  string
	logger     *zap.Logger

	// un amqp.Channel no se puede usar desde varias goroutines a la vez
	mu sync.Mutex
}

// NewRabbitMQPublisher conecta con RabbitMQ y declara la queue
func NewRabbitMQPublisher(rabbitURL, queueName string, logger *zap.Logger) (*RabbitMQPublisher, error) {
	logger.Info("connecting to RabbitMQ")

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if queueName == "" {
		queueName = "starwars_events"
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logger.Info("RabbitMQ publisher ready", zap.String("queue", queueName))

	return &RabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
		logger:     logger,
	}, nil
}

// Publish serializa el mensaje y lo manda a la queue como persistente
func (p *RabbitMQPublisher) Publish(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		"",          // exchange por defecto
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("event published",
		zap.String("action", msg.Action),
		zap.String("entity", msg.Entity),
		zap.Uint("entity_id", msg.EntityID),
	)
	return nil
}

// Close cierra el channel y la conexión
func (p *RabbitMQPublisher) Close() error {
	var errs []error

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing channel: %w", err))
		}
	}
	if p.connection != nil {
		if err := p.connection.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ publisher: %v", errs)
	}
	p.logger.Info("RabbitMQ publisher closed")
	return nil
}

// NopPublisher descarta los eventos. Se usa cuando no hay RABBITMQ_URL.
type NopPublisher struct{}

// Publish no hace nada
func (NopPublisher) Publish(context.Context, Message) error { return nil }

// Close no hace nada
func (NopPublisher) Close() error { return nil }
