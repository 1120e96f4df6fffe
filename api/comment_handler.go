package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/services"
)

type commentHandler struct {
	responder      Responder
	logger         zerolog.Logger
	commentService services.CommentService
}

func newCommentHandler(commentService services.CommentService) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		commentService: commentService,
	}
}

type createCommentRequest struct {
	Content         string  `json:"content"`
	ParentCommentID *string `json:"parentCommentId"`
}

// createComment adds a comment to a blog, optionally as a reply.
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.InvalidToken())
			return
		}

		blogID, ok := pathUUID(w, r, h.responder, "blogID")
		if !ok {
			return
		}

		var req createCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if req.Content == "" {
			h.responder.WriteError(w, errs.NewValidationError(
				errs.FieldError{Field: "content", Message: "content is required"},
			))
			return
		}

		var parentCommentID *uuid.UUID
		if req.ParentCommentID != nil {
			parsed, err := uuid.Parse(*req.ParentCommentID)
			if err != nil {
				h.responder.WriteError(w, errs.NewValidationError(
					errs.FieldError{Field: "parentCommentId", Message: "value is not a valid UUID"},
				))
				return
			}
			parentCommentID = &parsed
		}

		comment, err := h.commentService.Create(blogID, principal.ID, req.Content, parentCommentID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusCreated, comment)
	}
}

// getBlogComments retrieves a blog with its comments collection.
func (h commentHandler) getBlogComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := pathUUID(w, r, h.responder, "blogID")
		if !ok {
			return
		}

		blog, err := h.commentService.GetParentComments(blogID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, blog)
	}
}

// getReplies lists the replies of a comment.
func (h commentHandler) getReplies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, ok := pathUUID(w, r, h.responder, "commentID")
		if !ok {
			return
		}

		replies, err := h.commentService.GetReplies(commentID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, replies)
	}
}

// toggleCommentLike likes or unlikes a comment for the requesting principal.
func (h commentHandler) toggleCommentLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.InvalidToken())
			return
		}

		commentID, ok := pathUUID(w, r, h.responder, "commentID")
		if !ok {
			return
		}

		result, err := h.commentService.LikeOrUnlike(commentID, principal.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusCreated, result)
	}
}

// deleteComment removes a comment; allowed for the author and for admins.
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.InvalidToken())
			return
		}

		commentID, ok := pathUUID(w, r, h.responder, "commentID")
		if !ok {
			return
		}

		roleName := ""
		if principal.Role != nil {
			roleName = principal.Role.Name
		}

		if err := h.commentService.Remove(principal.ID, roleName, commentID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, messageResponse{Message: "Comment deleted successfully"})
	}
}
