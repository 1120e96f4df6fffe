package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/bloghive/backend/models"
)

// setupRoutes mounts every endpoint. Each route declares exactly the role it
// needs: most require any authenticated principal, the admin-gated ones say
// so explicitly, and login/register/refresh are public.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public endpoints
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/refresh", handlers.authHandler.refresh())
		r.Post("/users/register", handlers.userHandler.register())

		// Role creation is gated by the static basic-auth pair, not a bearer
		// token, so an operator can bootstrap the first roles.
		r.Post("/roles", authMiddleware.basicAuth(handlers.roleHandler.createRole()))
	})

	// Authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.With(authMiddleware.requireRole(models.RoleAdmin)).
			Get("/roles", handlers.roleHandler.getAllRoles())

		r.Post("/blogs", handlers.blogHandler.createBlog())
		r.Get("/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/blogs/{blogID}", handlers.blogHandler.getBlog())
		r.With(authMiddleware.requireRole(models.RoleAdmin)).
			Delete("/blogs/{blogID}", handlers.blogHandler.deleteBlog())

		r.Post("/blogs/{blogID}/comments", handlers.commentHandler.createComment())
		r.Get("/blogs/{blogID}/comments", handlers.commentHandler.getBlogComments())
		r.Post("/blogs/{blogID}/like", handlers.likeHandler.toggleBlogLike())
		r.Get("/blogs/{blogID}/like", handlers.likeHandler.getBlogLikes())

		r.Post("/comments/{commentID}/like", handlers.commentHandler.toggleCommentLike())
		r.Delete("/comments/{commentID}", handlers.commentHandler.deleteComment())
		r.Get("/comments/{commentID}/replies", handlers.commentHandler.getReplies())
	})
}
