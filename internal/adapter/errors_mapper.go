package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/shelfsync/internal/app"
	"github.com/MKhiriev/shelfsync/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError returns nil for any 2xx response. Known statuses wrap their
// sentinel as "<sentinel>: <raw body>" so callers can still read the
// server's error message.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}

// mapSnapshotError is mapHTTPError for the snapshot GET: only a 404 carrying
// the snapshot handler's message means the user has never pushed.
func mapSnapshotError(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	var body models.ErrorResponse
	if json.Unmarshal(resp.Body(), &body) == nil && body.Error == app.MsgSnapshotNotFound {
		return err
	}
	return fmt.Errorf("%w: %s", ErrEndpointNotFound, strings.TrimSpace(string(resp.Body())))
}
