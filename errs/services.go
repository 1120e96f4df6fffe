package errs

import (
	"errors"
	"net/http"
)

// Domain error sentinels. Messages are user-facing and returned verbatim in
// the error envelope.
var (
	ErrInvalidToken       = errors.New("Invalid Token!")
	ErrExpiredToken       = errors.New("Expired Token!")
	ErrInvalidCreds       = errors.New("Invalid credentials")
	ErrUnauthorizedAccess = errors.New("You are not authorized to perform this action.")

	ErrUserNotFound          = errors.New("User not found")
	ErrUserAlreadyExists     = errors.New("User already exists")
	ErrUserRoleNotFound      = errors.New("User role not found")
	ErrUserRoleAlreadyExists = errors.New("User role already exists")

	ErrBlogNotFound  = errors.New("Blog not found")
	ErrDuplicateBlog = errors.New("Blog already exists.")

	ErrCommentNotFound             = errors.New("Comment not found")
	ErrParentCommentNotFound       = errors.New("Parent comment not found")
	ErrInvalidParentCommentBlog    = errors.New("Parent comment does not belong to this blog")
	ErrInvalidParentCommentNesting = errors.New("Replies cannot be nested more than one level deep")
)

func InvalidToken() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrInvalidToken}
}

func ExpiredToken() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrExpiredToken}
}

func InvalidCreds() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrInvalidCreds}
}

func UnauthorizedAccess() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrUnauthorizedAccess}
}

func UserNotFound() *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrUserNotFound}
}

func UserAlreadyExists() *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: ErrUserAlreadyExists}
}

func UserRoleNotFound() *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrUserRoleNotFound}
}

func UserRoleAlreadyExists() *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: ErrUserRoleAlreadyExists}
}

func BlogNotFound() *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrBlogNotFound}
}

func DuplicateBlog() *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: ErrDuplicateBlog}
}

func CommentNotFound() *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrCommentNotFound}
}

func ParentCommentNotFound() *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrParentCommentNotFound}
}

func InvalidParentCommentBlog() *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrInvalidParentCommentBlog}
}

func InvalidParentCommentNesting() *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: ErrInvalidParentCommentNesting}
}
