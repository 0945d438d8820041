package messaging

import (
	"fmt"
	"log"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
)

// NewRabbitMQ dials the broker receiving the indicator events.
func NewRabbitMQ(driverConfig *config.DriverConfig, logger *zap.Logger) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s:%s: %s", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port, err.Error())
	}

	logger.Info("Successfully connected to rabbitMQ",
		zap.String("host", driverConfig.RabbitMQ.Host),
		zap.String("port", driverConfig.RabbitMQ.Port),
	)
	return conn
}
