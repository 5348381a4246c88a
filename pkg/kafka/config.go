package kafka

import "time"

// Config holds Kafka producer parameters.
type Config struct {
	Brokers []string

	// BatchTimeout bounds how long the writer buffers before flushing.
	// Zero means the writer default.
	BatchTimeout time.Duration
}
