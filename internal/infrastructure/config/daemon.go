package config

import "time"

// DaemonConfig holds colony-daemon runtime configuration.
type DaemonConfig struct {
	// Wall-clock interval between calls to the tick driver's Step when
	// running against a live host engine.
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"required"`

	// gRPC address of the host engine (consumed by adapters/hostgrpc).
	HostAddress string `mapstructure:"host_address" validate:"required"`

	// PID file location.
	PIDFile string `mapstructure:"pid_file"`

	// Graceful shutdown timeout.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
