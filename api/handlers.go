package api

import (
	"github.com/bloghive/backend/auth"
	"github.com/bloghive/backend/database"
	"github.com/bloghive/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, tokens *auth.TokenService) *routeHandlers {
	hasher := auth.NewHasher()

	return &routeHandlers{
		authHandler:    newAuthHandler(services.NewAuthService(db, hasher, tokens)),
		userHandler:    newUserHandler(services.NewUserService(db, hasher)),
		roleHandler:    newRoleHandler(services.NewRoleService(db)),
		blogHandler:    newBlogHandler(services.NewBlogService(db)),
		commentHandler: newCommentHandler(services.NewCommentService(db)),
		likeHandler:    newLikeHandler(services.NewLikeService(db)),
	}
}
