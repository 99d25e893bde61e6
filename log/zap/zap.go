// Package zap adapts go.uber.org/zap to the layerstore Logger interface.
package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/layerstore"
)

type Adapter struct{ L *zap.Logger }

var _ layerstore.Logger = Adapter{}

func (a Adapter) Debug(msg string, f layerstore.Fields) { a.L.Debug(msg, fields(f)...) }
func (a Adapter) Info(msg string, f layerstore.Fields)  { a.L.Info(msg, fields(f)...) }
func (a Adapter) Warn(msg string, f layerstore.Fields)  { a.L.Warn(msg, fields(f)...) }
func (a Adapter) Error(msg string, f layerstore.Fields) { a.L.Error(msg, fields(f)...) }

func fields(f layerstore.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
