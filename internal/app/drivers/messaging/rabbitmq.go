package messaging

import (
	"daily-journal-service/internal/app/config"
	"fmt"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker and declares the durable topic exchange that journal
// events are published to.
func NewRabbitMQ(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open rabbitMQ channel: %s", err.Error())
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(internalConfig.RabbitMQ.EventExchange, amqp091.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to declare rabbitMQ exchange %s: %s", internalConfig.RabbitMQ.EventExchange, err.Error())
	}

	log.Println("Successfully connected to rabbitMQ")
	return conn
}
