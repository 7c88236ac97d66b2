// Package logging constructs the process-wide zap logger.
package logging

import "go.uber.org/zap"

// New returns a production logger in release mode and a development logger
// otherwise.
func New(ginMode string) (*zap.Logger, error) {
	if ginMode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
