// Package api adapts the service to serverless platforms that invoke a
// plain http.Handler per request.
package api

import (
	"net/http"
	"sync"

	"luxedrive/config"
	"luxedrive/di"
	"luxedrive/shared/logger"
)

var (
	handler     http.Handler
	handlerOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	handlerOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		handler = di.InitializeService().HTTP.Handler()
	})

	handler.ServeHTTP(w, r)
}
