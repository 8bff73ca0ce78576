package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const seatBookedQueueName = "seat.booked"

// Publisher sends SeatBookedEvents to RabbitMQ. It dials per publish so
// a broker restart between bookings never leaves it holding a dead
// connection; booking volume is far below the rate where that matters.
// Any failure is logged and returned so callers can ignore it without
// interrupting the booking response.
type Publisher struct {
	url string
	log zerolog.Logger
}

// NewPublisher returns a Publisher for the given AMQP URL.
func NewPublisher(url string, log zerolog.Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// PublishSeatBooked publishes the event to the seat.booked queue. The
// queue is declared durable and messages are marked persistent so
// confirmed bookings survive a broker restart.
func (p *Publisher) PublishSeatBooked(ctx context.Context, event SeatBookedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare keeps publisher and consumer startup order free.
	if _, err := ch.QueueDeclare(
		seatBookedQueueName, // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	); err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",                  // default exchange
		seatBookedQueueName, // routing key = queue name
		false,               // mandatory
		false,               // immediate
		pub,
	); err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
