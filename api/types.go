package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	userHandler    userHandler
	roleHandler    roleHandler
	blogHandler    blogHandler
	commentHandler commentHandler
	likeHandler    likeHandler
}

// ErrorResponse documents the error envelope shape.
type ErrorResponse struct {
	Status  string `json:"status" example:"Error"`
	Code    int    `json:"code" example:"404"`
	Message any    `json:"message"`
}
