// Package logger provides a thin zap wrapper used by long-running commands.
// One-shot commands stay quiet; watch mode logs every scan through it.
package logger
