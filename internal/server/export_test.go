package server

import (
	"net/http"

	"github.com/osse101/MishkaBot_Go/internal/logger"
)

func requestIDFrom(r *http.Request) (string, bool) {
	return logger.RequestIDFromContext(r.Context())
}
