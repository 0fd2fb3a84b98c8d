// Package logging builds the slog loggers used across sortd.
//
// Two output formats are supported: a console handler that renders
// "TIMESTAMP LEVEL component: message key=value" lines for interactive use,
// and a JSON handler for machine consumption. Components attach themselves
// with logger.With(logging.String(logging.FieldComponent, name)) so the
// console handler can promote the component into the line prefix.
package logging
