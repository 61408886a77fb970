package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/app"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/utils"
)

// withAPIKey rejects every request whose X-API-Key header differs from the
// configured key with 401 and [app.MsgInvalidAPIKey]. An unconfigured key
// rejects everything.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get(adapter.APIKeyHeader)
		if h.apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.apiKey)) != 1 {
			logger.FromRequest(r).Err(ErrInvalidAPIKey).Str("uri", r.RequestURI).Send()
			utils.WriteError(w, app.MsgInvalidAPIKey, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
