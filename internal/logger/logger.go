package logger

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	Level string
}

// PrepareLogger applies the configured level to the standard logrus logger.
func PrepareLogger(config Config) error {
	level, err := log.ParseLevel(config.Level)
	if err != nil {
		return fmt.Errorf("failed to prepare logger: %w", err)
	}
	log.SetLevel(level)
	return nil
}
