package api

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/services"
)

type userHandler struct {
	responder   Responder
	logger      zerolog.Logger
	userService services.UserService
}

func newUserHandler(userService services.UserService) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		userService: userService,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"roleId"`
}

// register creates a new user account.
func (h userHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		roleID, fields := validateRegisterRequest(req)
		if len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields...))
			return
		}

		user, err := h.userService.Register(req.Email, req.Password, roleID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusCreated, user.Public())
	}
}

func validateRegisterRequest(req registerRequest) (uuid.UUID, []errs.FieldError) {
	var fields []errs.FieldError

	if _, err := mail.ParseAddress(req.Email); err != nil {
		fields = append(fields, errs.FieldError{Field: "email", Message: "value is not a valid email address"})
	}

	if msg := validatePassword(req.Password); msg != "" {
		fields = append(fields, errs.FieldError{Field: "password", Message: msg})
	}

	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		fields = append(fields, errs.FieldError{Field: "roleId", Message: "value is not a valid UUID"})
	}

	return roleID, fields
}

// validatePassword enforces the registration complexity rules; it returns an
// empty string when the password passes.
func validatePassword(password string) string {
	const specials = "@$!%*?&"

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(specials, c):
			hasSpecial = true
		}
	}

	if len(password) < 8 || !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return "Password must be at least 8 characters long, contain an uppercase letter, " +
			"a lowercase letter, a digit, and a special character."
	}
	return ""
}
