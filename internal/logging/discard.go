package logging

import "context"

// DiscardLogger drops every record. Intended for tests and as a default
// when no logger is injected.
type DiscardLogger struct{}

func NewDiscardLogger() *DiscardLogger { return &DiscardLogger{} }

func (d *DiscardLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (d *DiscardLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (d *DiscardLogger) Error(ctx context.Context, msg string, args ...any) {}
func (d *DiscardLogger) With(args ...any) Logger                            { return d }
