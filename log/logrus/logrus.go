// Package logrus adapts sirupsen/logrus to the layerstore Logger interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/layerstore"
)

type Adapter struct{ E *logrus.Entry }

var _ layerstore.Logger = Adapter{}

func (a Adapter) Debug(msg string, f layerstore.Fields) {
	a.E.WithFields(logrus.Fields(f)).Debug(msg)
}

func (a Adapter) Info(msg string, f layerstore.Fields) {
	a.E.WithFields(logrus.Fields(f)).Info(msg)
}

func (a Adapter) Warn(msg string, f layerstore.Fields) {
	a.E.WithFields(logrus.Fields(f)).Warn(msg)
}

func (a Adapter) Error(msg string, f layerstore.Fields) {
	a.E.WithFields(logrus.Fields(f)).Error(msg)
}
