// Package execshell provides structured helpers for invoking the git executable.
//
// It wraps os/exec via OSCommandRunner, exposes ShellExecutor to log and
// observe every invocation, and classifies failures into non-zero exits,
// launch failures, and missing executables so callers can translate them into
// user-facing messages. Streams may be captured or attached directly to the
// caller's terminal for interactive sessions.
package execshell
