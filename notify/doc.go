// Package notify provides structured error records and a process-wide
// error notifier.
//
// Low-level file operations report failures in two ways: the failing call
// returns an [*Error] directly, and the same record is published to the
// shared [Notifier] so that registered observers (logging, telemetry) see
// every hard failure in the process without being threaded through each
// call site.
//
// # Usage
//
//	notify.Shared().Register("log", notify.LogObserver(slog.Default()))
//	defer notify.Shared().Unregister("log")
//
// # Thread Safety
//
// Notifier is safe for concurrent registration and publication from
// multiple goroutines. Error records are immutable once published;
// observers must not retain and modify them.
package notify
