package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/shelfsync/internal/app"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/utils"
	"github.com/MKhiriev/shelfsync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.snapshotOwner(w, r)
	if !ok {
		return
	}

	snapshot, err := h.services.SnapshotService.GetSnapshot(r.Context(), userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error getting snapshot")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) putSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.snapshotOwner(w, r)
	if !ok {
		return
	}

	var snapshot models.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.SnapshotService.PutSnapshot(r.Context(), userID, snapshot); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error storing snapshot")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// snapshotOwner returns the {userID} path value after checking it against
// the authenticated user. On failure the response is already written.
func (h *Handler) snapshotOwner(w http.ResponseWriter, r *http.Request) (int64, bool) {
	log := logger.FromRequest(r)

	pathUserID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || pathUserID <= 0 {
		log.Error().Str("user_id", chi.URLParam(r, "userID")).Msg("invalid user id in path")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return 0, false
	}

	tokenUserID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in context")
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return 0, false
	}

	if pathUserID != tokenUserID {
		log.Error().
			Int64("path_user_id", pathUserID).
			Int64("token_user_id", tokenUserID).
			Msg("access to snapshot of a different user")
		utils.WriteError(w, app.MsgAccessDenied, http.StatusForbidden)
		return 0, false
	}

	return pathUserID, true
}
