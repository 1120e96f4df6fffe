package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/services"
)

type likeHandler struct {
	responder   Responder
	logger      zerolog.Logger
	likeService services.LikeService
}

func newLikeHandler(likeService services.LikeService) likeHandler {
	logger := log.With().Str("handlerName", "likeHandler").Logger()

	return likeHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		likeService: likeService,
	}
}

// toggleBlogLike likes or unlikes a blog for the requesting principal.
func (h likeHandler) toggleBlogLike() http.HandlerFunc {
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

		result, err := h.likeService.Toggle(principal.ID, blogID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusCreated, result)
	}
}

// getBlogLikes lists who liked a blog and the total count.
func (h likeHandler) getBlogLikes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := pathUUID(w, r, h.responder, "blogID")
		if !ok {
			return
		}

		likes, err := h.likeService.GetLikes(blogID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, likes)
	}
}
