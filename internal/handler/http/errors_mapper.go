package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/shelfsync/internal/app"
	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/internal/utils"
)

type errorStatus struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorStatus{
	service.ErrInvalidDataProvided:                   {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:                         {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpired:                        {http.StatusUnauthorized, app.MsgTokenIsExpired},
	service.ErrTokenIsExpiredOrInvalid:               {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrValidationNoUserID:                    {http.StatusBadRequest, app.MsgNoUserIDProvided},
	service.ErrValidationNoDeviceID:                  {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrValidationNegativeVersion:             {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrValidationInvalidTimestamp:            {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrValidationInvalidChallengeGoal:        {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrUnauthorizedAccessToDifferentUserData: {http.StatusForbidden, app.MsgAccessDenied},

	store.ErrLoginAlreadyExists: {http.StatusConflict, app.MsgLoginAlreadyExists},
	store.ErrNoUserWasFound:     {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	store.ErrSnapshotNotFound:   {http.StatusNotFound, app.MsgSnapshotNotFound},
}

func statusFromError(err error) errorStatus {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return errorStatus{http.StatusInternalServerError, app.MsgInternalServerError}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteError(w, status.message, status.status)
}
