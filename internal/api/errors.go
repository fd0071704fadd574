package api

import (
	"errors"
	"net/http"
	"time"

	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/constants"
	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/services"
)

// respondServiceError maps service-layer errors to HTTP responses.
// Unknown errors degrade to 500 without leaking internals.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	switch {
	case errors.Is(err, services.ErrNotAMember):
		common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeNotAMember), http.StatusForbidden)

	case errors.Is(err, services.ErrAlreadyCheckedIn):
		common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeAlreadyCheckedIn), http.StatusConflict)

	case errors.Is(err, services.ErrInvalidRegistration),
		errors.Is(err, services.ErrInvalidStatusTransition),
		errors.Is(err, services.ErrInvalidNewsItem),
		errors.Is(err, services.ErrInvalidContentItem),
		errors.Is(err, services.ErrInvalidContentType):
		common.RespondError(w, initTime, err, "", http.StatusBadRequest)

	case errors.Is(err, repositories.ErrRegistrationNotFound),
		errors.Is(err, repositories.ErrItemNotFound):
		common.RespondError(w, initTime, err, "", http.StatusNotFound)

	case errors.Is(err, repositories.ErrMemberExists):
		common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeAlreadyPromoted), http.StatusConflict)

	default:
		common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeStorageFailure), http.StatusInternalServerError)
	}
}
