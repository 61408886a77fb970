package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/shelfsync/internal/utils"
	"github.com/MKhiriev/shelfsync/models"
)

// ping answers the client's connectivity probe.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.PingResponse{Status: "ok", Time: time.Now().UnixMilli()}, http.StatusOK)
}
