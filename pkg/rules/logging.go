package rules

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/value"
)

// Logged wraps r and writes a debug record for every failure. The result of r
// is returned unchanged. The value itself is never logged, only its kind.
// A nil logger falls back to slog.Default().
func Logged(logger *slog.Logger, name string, r Rule) Rule {
	if logger == nil {
		logger = slog.Default()
	}
	return func(v value.Value) error {
		err := r(v)
		if err == nil {
			return nil
		}

		attrs := []slog.Attr{
			slog.String("rule", name),
			slog.String("kind", v.Kind().String()),
			slog.String("message", err.Error()),
		}
		var verr ValidationError
		if errors.As(err, &verr) && verr.TranslationKey != "" {
			attrs = append(attrs, slog.String("translation_key", verr.TranslationKey))
		}
		logger.LogAttrs(context.Background(), slog.LevelDebug, "validation failed", attrs...)
		return err
	}
}
