// Package queue publishes ledger audit events to RabbitMQ so off-process
// consumers (indexer, notification service) can follow the append-only log.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"agri-traceability-api-server/internal/ledger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher giữ một kết nối AMQP và publish sự kiện vào một fanout exchange.
// Publisher implement ledger.EventSink.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewPublisher kết nối broker và khai báo exchange (durable, idempotent).
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange, // name
		"fanout", // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish gửi một sự kiện ledger lên exchange. Lỗi chỉ được log: sự kiện
// đã commit trong ledger, request phía trên không được phép fail vì broker.
func (p *Publisher) Publish(evt ledger.Event) {
	body, err := json.Marshal(evt)
	if err != nil {
		log.Printf("amqp: marshal event failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    evt.EmittedAt,
		Type:         evt.Type,
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		evt.Type,   // routing key (fanout bỏ qua, hữu ích khi đổi sang topic)
		false,      // mandatory
		false,      // immediate
		pub,
	); err != nil {
		log.Printf("amqp: publish %s failed: %v", evt.Type, err)
	}
}

// Close đóng channel và connection.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
