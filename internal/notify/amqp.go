package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-guard/backend/internal/service"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// AMQP publishes alerts as JSON messages to a direct exchange.
type AMQP struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

// NewAMQP connects to the broker and declares the exchange and queue.
func NewAMQP(url, exchangeName, queueName string) (*AMQP, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	a := &AMQP{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := a.setup(); err != nil {
		a.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return a, nil
}

func (a *AMQP) setup() error {
	err := a.channel.ExchangeDeclare(
		a.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = a.channel.QueueDeclare(
		a.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// The routing key is the queue name
	err = a.channel.QueueBind(a.queueName, a.queueName, a.exchangeName, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Notify publishes the alert.
func (a *AMQP) Notify(ctx context.Context, alert service.Alert) error {
	event, err := NewEvent(alert)
	if err != nil {
		return err
	}

	body, err := event.JSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = a.channel.PublishWithContext(
		ctx,
		a.exchangeName, // exchange
		a.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Type:         string(event.Kind),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().
		Str("kind", string(event.Kind)).
		Str("exchange", a.exchangeName).
		Str("queue", a.queueName).
		Msg("Published budget alert")

	return nil
}

// Close closes the channel and the connection.
func (a *AMQP) Close() error {
	if a.channel != nil {
		a.channel.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
