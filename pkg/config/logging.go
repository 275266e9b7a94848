package config

import "github.com/go-drift/handlers/pkg/errors"

// ErrorHandler returns the log handler matching the logging settings.
func (r *Resolved) ErrorHandler() errors.ErrorHandler {
	return &errors.LogHandler{Verbose: r.Verbose}
}
