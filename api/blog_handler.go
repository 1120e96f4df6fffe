package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/services"
)

type blogHandler struct {
	responder   Responder
	logger      zerolog.Logger
	blogService services.BlogService
}

func newBlogHandler(blogService services.BlogService) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		blogService: blogService,
	}
}

type createBlogRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// pathUUID parses a uuid path parameter, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, responder Responder, param string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		responder.WriteError(w, errs.NewBadRequestError("invalid "+param))
		return uuid.Nil, false
	}
	return id, true
}

// createBlog creates a blog authored by the requesting principal.
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.InvalidToken())
			return
		}

		var req createBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		var fields []errs.FieldError
		if req.Name == "" {
			fields = append(fields, errs.FieldError{Field: "name", Message: "name is required"})
		}
		if req.Content == "" {
			fields = append(fields, errs.FieldError{Field: "content", Message: "content is required"})
		}
		if len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields...))
			return
		}

		blog, err := h.blogService.Create(req.Name, req.Content, principal.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusCreated, blog)
	}
}

// getAllBlogs lists non-deleted blogs one page at a time.
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))

		blogs, err := h.blogService.GetAll(page, size)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, blogs)
	}
}

// getBlog retrieves a blog by id.
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := pathUUID(w, r, h.responder, "blogID")
		if !ok {
			return
		}

		blog, err := h.blogService.GetByID(blogID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, blog)
	}
}

// deleteBlog soft-deletes a blog. The route requires ADMIN.
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := pathUUID(w, r, h.responder, "blogID")
		if !ok {
			return
		}

		if err := h.blogService.DeleteByID(blogID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, messageResponse{Message: "Blog deleted successfully"})
	}
}
