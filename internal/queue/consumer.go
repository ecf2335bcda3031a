package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartAuditConsumer connects to RabbitMQ, declares the reservation queue
// and appends every message to the audit log at logPath, one line per
// event.  It reconnects with exponential backoff until ctx is cancelled,
// then returns ctx.Err().  Malformed messages are rejected without requeue.
func StartAuditConsumer(ctx context.Context, url, logPath string) error {
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("audit-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, logPath)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("audit-consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, logPath string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("audit-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(ReservationQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(ReservationQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := handleMessage(logPath, d.Body); err != nil {
				log.Printf("audit-consumer: handle message failed: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleMessage(logPath string, body []byte) error {
	var ev ReservationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Action == "" {
		return errors.New("message has no action")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

func formatLine(ev ReservationEvent) string {
	line := fmt.Sprintf("[%s] %s | email=%s | event_id=%d | event_date=%s",
		ev.OccurredAt, ev.Action, ev.Email, ev.EventID, ev.EventDate)
	if ev.Name != "" {
		line += fmt.Sprintf(" | name=%q", ev.Name)
	}
	if ev.OldSeatNumber != 0 {
		line += fmt.Sprintf(" | seat=%d->%d", ev.OldSeatNumber, ev.SeatNumber)
	} else if ev.SeatNumber != 0 {
		line += fmt.Sprintf(" | seat=%d", ev.SeatNumber)
	}
	return line + "\n"
}
