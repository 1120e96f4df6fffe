package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/services"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	authService services.AuthService
}

func newAuthHandler(authService services.AuthService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		authService: authService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// login exchanges an email/password pair for an access and a refresh token.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		var fields []errs.FieldError
		if req.Email == "" {
			fields = append(fields, errs.FieldError{Field: "email", Message: "email is required"})
		}
		if req.Password == "" {
			fields = append(fields, errs.FieldError{Field: "password", Message: "password is required"})
		}
		if len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields...))
			return
		}

		tokens, err := h.authService.Login(req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, tokens)
	}
}

// refresh exchanges the refresh token in the Authorization header for a new
// access token.
func (h authHandler) refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.responder.WriteError(w, errs.InvalidToken())
			return
		}

		accessToken, err := h.authService.Refresh(token)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, refreshResponse{AccessToken: accessToken})
	}
}
