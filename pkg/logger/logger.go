package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Development mode gets human-readable
// console output, anything else the production JSON encoder.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
