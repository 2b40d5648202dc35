package toolkit

import (
	"context"
	"fmt"
	"log/slog"
)

// Text maps a tool result to the single string handed back to the model.
// Failures render as their message so the caller never sees a structured error.
func Text(out string, err error) string {
	if err == nil {
		return out
	}
	if tkErr, ok := err.(ToolKitError); ok {
		return tkErr.Message
	}
	return fmt.Sprintf("An unexpected error occurred: %v", err)
}

// Guard runs fn and renders its result with Text. A panic inside fn is
// recovered and reported as an unexpected failure.
func Guard(ctx context.Context, logger *slog.Logger, tool string, fn func(context.Context) (string, error)) (text string) {
	if logger == nil {
		logger = slog.Default()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "tool panicked", "tool", tool, "panic", r)
			text = Text("", Fail(KindUnexpected, "An unexpected error occurred: %v", r))
		}
	}()

	out, err := fn(ctx)
	if err != nil {
		logger.WarnContext(ctx, "tool call failed", "tool", tool, "kind", KindOf(err), "err", err)
	}
	return Text(out, err)
}
