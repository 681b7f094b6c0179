// Package logger provides structured diagnostics logging for the SDK,
// built on the standard library's log/slog.
//
// The SDK itself logs nothing by default (NewNope); the embedding
// application opts in through clientapp.WithLogger. Context extractors
// inject instance-scoped values (e.g. the resolved environment id) into
// every record:
//
//	envExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if env, ok := ctx.Value(envKey{}).(string); ok && env != "" {
//			return slog.String("environment", env), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(envExtractor)
//	log.InfoContext(ctx, "channel established", slog.String("origin", origin))
//
// NewWithSentry adds an optional Sentry sink for error tracking. With an
// empty DSN it degrades to stdout-only logging, so the same wiring works in
// development and production.
package logger
