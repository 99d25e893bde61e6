// Package slog adapts log/slog to the layerstore Logger interface.
package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/unkn0wn-root/layerstore"
)

type Adapter struct{ L *stdslog.Logger }

var _ layerstore.Logger = Adapter{}

func (a Adapter) Debug(msg string, f layerstore.Fields) { a.log(stdslog.LevelDebug, msg, f) }
func (a Adapter) Info(msg string, f layerstore.Fields)  { a.log(stdslog.LevelInfo, msg, f) }
func (a Adapter) Warn(msg string, f layerstore.Fields)  { a.log(stdslog.LevelWarn, msg, f) }
func (a Adapter) Error(msg string, f layerstore.Fields) { a.log(stdslog.LevelError, msg, f) }

func (a Adapter) log(level stdslog.Level, msg string, f layerstore.Fields) {
	a.L.LogAttrs(context.Background(), level, msg, attrs(f)...)
}

func attrs(f layerstore.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, stdslog.Any(k, v))
	}
	return out
}
