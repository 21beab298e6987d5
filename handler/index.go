package handler

import (
	"net/http"
)

// Handler answers the root path with a plain greeting.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hello from plantNet Server.."))
}
