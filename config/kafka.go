package config

import (
	"fmt"
	"net"
	"skillpass/utils"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// CreateScoreFeedTopic creates the per-event topic that score upserts are
// mirrored to. Consumers outside this service (scoreboards, audit) read it.
func CreateScoreFeedTopic(eventId int) error {
	broker := Env().KafkaBroker
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	topic := fmt.Sprintf("score-updates-%d", eventId)

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	topicConfig := kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// 7 days retention
			{
				ConfigName:  "retention.ms",
				ConfigValue: "604800000",
			},
		},
	}

	return controllerConn.CreateTopics(topicConfig)
}

func GetScoreFeedWriter(eventId int) (*kafka.Writer, error) {
	broker := Env().KafkaBroker
	if broker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	err := CreateScoreFeedTopic(eventId)
	if err != nil {
		return nil, err
	}
	return kafka.NewWriter(kafka.WriterConfig{
		Brokers: []string{broker},
		Topic:   fmt.Sprintf("score-updates-%d", eventId),
	}), nil
}
