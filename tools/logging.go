package tools

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/everydev1618/arcane-mcp/arcane"
)

// LoggingMiddleware logs every tool call with a fresh call id. The call
// logger is attached to the context, so handlers can use zerolog.Ctx.
// Failed backend calls also log the HTTP status.
func LoggingMiddleware(logger zerolog.Logger) ToolMiddleware {
	return func(next ToolFunc) ToolFunc {
		return func(ctx context.Context, params map[string]any) (string, error) {
			l := logger.With().
				Str("call_id", uuid.NewString()).
				Str("tool", ToolName(ctx)).
				Logger()
			ctx = l.WithContext(ctx)

			start := time.Now()
			out, err := next(ctx, params)

			ev := l.Info()
			if err != nil {
				ev = l.Warn().Err(err)
				if status := arcane.StatusCode(err); status != 0 {
					ev = ev.Int("status", status)
				}
			}
			ev.Dur("duration", time.Since(start)).Msg("tool call")

			return out, err
		}
	}
}
