package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends ReservationEvent messages to the reservation queue.  A
// fresh connection is opened per message; reservation traffic is low and
// this keeps the publisher free of reconnect state.  Errors are logged and
// returned so that callers can ignore them without failing the request.
type Publisher struct {
	url string
}

// NewPublisher returns a Publisher for the broker at url.
func NewPublisher(url string) *Publisher { return &Publisher{url: url} }

// Publish marshals ev and publishes it as a persistent message.
func (p *Publisher) Publish(ctx context.Context, ev ReservationEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		ReservationQueueName, // name
		true,                 // durable
		false,                // autoDelete
		false,                // exclusive
		false,                // noWait
		nil,                  // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         ev.Action,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", ReservationQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish %s failed: %v", ev.Action, err)
		return err
	}
	return nil
}
