// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is configured at creation time with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [InfoContext], [Error], ...) use a
// default logger writing to [os.Stderr], reconfigured with [Config]:
//
//	log.Config(log.WithFormat(log.FormatJSON))
//	log.Error("run failed", slog.Any("error", err))
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Messages below the configured level are discarded. [DefaultLevel] is warn.
//
// # Formats
//
// [FormatText] (default) and [FormatJSON]. Text output can be colorized with
// [WithPretty].
package log
