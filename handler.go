package goregistration

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Mysh3ll/goregistration/i18n"
)

type messageResponse struct {
	Message string `json:"message"`
}

type validationErrorResponse struct {
	ValidationErrors ValidationErrors `json:"validationErrors"`
}

// RegisterUserHandler serves POST /api/1.0/users. The response locale
// follows the Accept-Language header, falling back to English.
func RegisterUserHandler(svc Service, tr *i18n.Translator, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeRegisterUserRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		locale := r.Header.Get("Accept-Language")

		if _, err := svc.RegisterNewUser(r.Context(), req, locale); err != nil {
			encodeError(err, locale, tr, logger, w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messageResponse{Message: tr.Localize(locale, msgUserCreated)})
	})
}

func encodeError(err error, locale string, tr *i18n.Translator, logger *slog.Logger, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")

	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrorResponse{ValidationErrors: verrs})
	case errors.Is(err, ErrSendingActivation):
		logger.Error("activation email dispatch failed", "error", err)
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(messageResponse{Message: tr.Localize(locale, msgEmailFailure)})
	default:
		logger.Error("registration failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(messageResponse{Message: tr.Localize(locale, msgServerError)})
	}
}

// decodeRegisterUserRequest parses the JSON body. Unknown fields such
// as a caller-supplied "inactive" are dropped here; the service forces
// the stored defaults regardless.
func decodeRegisterUserRequest(r *http.Request) (registerUserRequest, error) {
	ur := registerUserRequest{}
	if err := json.NewDecoder(r.Body).Decode(&ur); err != nil {
		return registerUserRequest{}, err
	}

	return ur, nil
}
