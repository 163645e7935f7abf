package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/stubapi"
	"github.com/MKhiriev/exo-explorer/internal/utils"
)

var errorStatusMap = map[error]int{
	stubapi.ErrValidation:             http.StatusBadRequest,
	stubapi.ErrEmailRequired:          http.StatusBadRequest,
	stubapi.ErrExoplanetIDRequired:    http.StatusBadRequest,
	stubapi.ErrPasswordFieldsRequired: http.StatusBadRequest,
	stubapi.ErrInvalidBackupCode:      http.StatusBadRequest,
	ErrMalformedJSON:                  http.StatusBadRequest,
	ErrInvalidParameter:               http.StatusBadRequest,

	stubapi.ErrBadCredentials:       http.StatusUnauthorized,
	stubapi.ErrWrongCurrentPassword: http.StatusUnauthorized,
	stubapi.ErrInvalidOtp:           http.StatusUnauthorized,
	stubapi.ErrOtpExpired:           http.StatusUnauthorized,
	stubapi.ErrOtpNotFound:          http.StatusUnauthorized,
	stubapi.ErrInvalidToken:         http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:     http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:   http.StatusUnauthorized,

	stubapi.ErrForbidden: http.StatusForbidden,
	ErrAdminRequired:     http.StatusForbidden,

	stubapi.ErrUserNotFound:      http.StatusNotFound,
	stubapi.ErrExoplanetNotFound: http.StatusNotFound,

	stubapi.ErrUserAlreadyExists: http.StatusConflict,
}

// classifyError returns the status of err and the sentinel whose text goes
// into the envelope. Unknown errors are internal and their text is not
// exposed.
func classifyError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classifyError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, message)
}
