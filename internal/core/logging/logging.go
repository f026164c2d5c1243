// Package logging holds the zerolog helpers shared by the editor packages.
// Events logged with a context from WithFile carry the edited file once the
// process logger has FileHook installed.
package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	ComponentField = "cmp"
	FileField      = "file"
)

type contextKey struct{}

// Component returns the process logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.With().Str(ComponentField, name).Logger()
}

// ForFile returns a component logger bound to ctx, so every event it writes
// passes ctx to the hooks.
func ForFile(ctx context.Context, name string) zerolog.Logger {
	return log.With().Str(ComponentField, name).Ctx(ctx).Logger()
}

// WithFile records the path of the edited file on ctx.
func WithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, contextKey{}, path)
}

// GetFile returns the path stored by WithFile, or "".
func GetFile(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	path, _ := ctx.Value(contextKey{}).(string)
	return path
}

// FileHook adds the edited file to events whose context carries one.
type FileHook struct{}

func (FileHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if path := GetFile(e.GetCtx()); path != "" {
		e.Str(FileField, path)
	}
}
