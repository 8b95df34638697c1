package config

// LoggingConfig holds logging configuration. The colony daemon logs with
// plain stdlib `log`, at a configured cadence rather than per-tick.
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Output destination: stdout, stderr, file
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	// File path (required if output is "file")
	FilePath string `mapstructure:"file_path"`

	// How often (in ticks) the driver logs a summary line instead of
	// logging every tick.
	SummaryCadenceTicks int64 `mapstructure:"summary_cadence_ticks" validate:"min=1"`
}
