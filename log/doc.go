// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports multiple output formats ([FormatJSON], [FormatLogfmt], and
// [FormatText]) and severity levels ([LevelError], [LevelWarn], [LevelInfo],
// and [LevelDebug]). Use [NewHandler] to create a handler directly, or use
// [Config] with CLI flag integration via [github.com/spf13/pflag] and shell
// completion support via [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// A [Publisher] fans out log output to multiple subscribers, which
// mapviewer uses to show recent log lines inside its Bubble Tea map
// viewer alongside stderr:
//
//	pub := log.NewPublisher()
//	w := io.MultiWriter(os.Stderr, pub)
//	handler, err := cfg.NewHandler(w)
//	slog.SetDefault(slog.New(handler))
//
//	sub := pub.Subscribe()
//	// sub.C() is read by a bubbletea.Cmd that feeds log lines into the
//	// model's log pane; see cmd/mapviewer.
package log
