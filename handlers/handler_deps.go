package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"clipscribe/internal/acquire"
	"clipscribe/internal/transcribe"
	"clipscribe/internal/worker"
)

// ApplicationHandler carries the shared dependencies for all HTTP handlers.
// Everything here is constructed once at startup and injected; there are no
// package-level singletons behind the handlers.
type ApplicationHandler struct {
	Log        *logrus.Logger
	Acquirer   *acquire.Acquirer
	Adapter    *transcribe.Adapter
	Dispatcher *worker.Dispatcher
	Interval   float64

	validate *validator.Validate
}

func NewApplicationHandler(
	log *logrus.Logger,
	acquirer *acquire.Acquirer,
	adapter *transcribe.Adapter,
	dispatcher *worker.Dispatcher,
	interval float64,
) *ApplicationHandler {
	return &ApplicationHandler{
		Log:        log,
		Acquirer:   acquirer,
		Adapter:    adapter,
		Dispatcher: dispatcher,
		Interval:   interval,
		validate:   validator.New(),
	}
}
