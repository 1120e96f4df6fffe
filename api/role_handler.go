package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/services"
)

type roleHandler struct {
	responder   Responder
	logger      zerolog.Logger
	roleService services.RoleService
}

func newRoleHandler(roleService services.RoleService) roleHandler {
	logger := log.With().Str("handlerName", "roleHandler").Logger()

	return roleHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		roleService: roleService,
	}
}

type createRoleRequest struct {
	Name string `json:"name"`
}

// createRole adds a role. The route is gated by basic auth.
func (h roleHandler) createRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError(
				errs.FieldError{Field: "name", Message: "name is required"},
			))
			return
		}

		role, err := h.roleService.Create(req.Name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusCreated, role)
	}
}

// getAllRoles lists every role. The route requires ADMIN.
func (h roleHandler) getAllRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roles, err := h.roleService.GetAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, roles)
	}
}
