package ports

import "context"

type ForAsking interface {
	// For asking questions in a terminal (or always answering no or
	// yes based on other inputs such as dry-run or force flags).
	// Returns false for "no" and true for "yes". Should support
	// exiting the program by some mechanism as well (usually simply
	// os.Exit(0) if choosing "exit program"). ctx should/could hold a
	// slog.Logger set with logger.WithLogger or
	// logger.WithDefaultLogger.
	Ask(ctx context.Context, format string, a ...any) bool
}
