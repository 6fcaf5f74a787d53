package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// ping answers "pong" while the database is reachable and 503 otherwise.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	err := h.services.AppInfoService.Ping(r.Context())
	for _, observer := range h.healthObservers {
		observer(err == nil)
	}

	w.Header().Set("Content-Type", "text/plain")
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(http.StatusText(http.StatusServiceUnavailable)))
		return
	}
	w.Write([]byte("pong"))
}
