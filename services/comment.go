package services

import (
	"github.com/google/uuid"

	"github.com/bloghive/backend/database"
	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

// CommentLikeResult is the outcome of a comment like toggle.
type CommentLikeResult struct {
	CommentID uuid.UUID `json:"commentId"`
	Liked     bool      `json:"liked"`
}

// CommentService handles comments, replies and comment likes.
type CommentService struct {
	db database.Database
}

func NewCommentService(db database.Database) CommentService {
	return CommentService{db: db}
}

// Create adds a comment to a blog, optionally as a reply to a parent comment.
// Replies nest at most one level deep: a comment that is itself a reply can
// never be a parent, and a reply's parent must belong to the same blog.
// The parent checks run existence first, then nesting depth, then blog match.
func (s CommentService) Create(blogID, authorID uuid.UUID, content string, parentCommentID *uuid.UUID) (*models.Comment, error) {
	var comment *models.Comment
	err := s.db.Transaction(func(tx database.Database) error {
		blog, err := tx.BlogRepo().FindByID(blogID)
		if err != nil {
			return errs.NewDatabaseError("find", "blog", err)
		}
		if blog == nil {
			return errs.BlogNotFound()
		}

		if parentCommentID != nil {
			parent, err := tx.CommentRepo().FindByID(*parentCommentID)
			if err != nil {
				return errs.NewDatabaseError("find", "comment", err)
			}
			if parent == nil {
				return errs.ParentCommentNotFound()
			}
			if parent.ParentCommentID != nil {
				return errs.InvalidParentCommentNesting()
			}
			if parent.BlogID != blogID {
				return errs.InvalidParentCommentBlog()
			}
		}

		comment = models.NewComment(content, blogID, authorID, parentCommentID)
		if err := tx.CommentRepo().Add(comment); err != nil {
			return errs.NewDatabaseError("create", "comment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// GetParentComments returns a non-deleted blog together with its associated
// comments collection. The collection is the full one; callers that want only
// top-level comments filter on a nil parent id.
func (s CommentService) GetParentComments(blogID uuid.UUID) (*models.Blog, error) {
	blog, err := s.db.BlogRepo().FindByIDWithComments(blogID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	if blog == nil {
		return nil, errs.BlogNotFound()
	}
	return blog, nil
}

// GetReplies returns all comments whose parent is the given comment. An
// unknown comment id yields an empty list, not an error.
func (s CommentService) GetReplies(commentID uuid.UUID) ([]models.Comment, error) {
	replies, err := s.db.CommentRepo().FindReplies(commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "replies", err)
	}
	return replies, nil
}

// LikeOrUnlike toggles the requesting user's like on a comment. The comment
// itself is not resolved first; the foreign key rejects likes on nonexistent
// comments and a racing duplicate insert collapses into the liked outcome.
func (s CommentService) LikeOrUnlike(commentID, userID uuid.UUID) (*CommentLikeResult, error) {
	result := &CommentLikeResult{CommentID: commentID}
	err := s.db.Transaction(func(tx database.Database) error {
		existing, err := tx.CommentLikeRepo().FindByUserAndComment(userID, commentID)
		if err != nil {
			return errs.NewDatabaseError("find", "comment like", err)
		}

		if existing != nil {
			if err := tx.CommentLikeRepo().Delete(existing.ID); err != nil {
				return errs.NewDatabaseError("delete", "comment like", err)
			}
			result.Liked = false
			return nil
		}

		if err := tx.CommentLikeRepo().Add(models.NewCommentLike(userID, commentID)); err != nil {
			switch {
			case errs.IsDuplicateKey(err):
				// Lost the race to a concurrent like; the desired state holds.
			case errs.IsForeignKeyViolation(err):
				return errs.CommentNotFound()
			default:
				return errs.NewDatabaseError("create", "comment like", err)
			}
		}
		result.Liked = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Remove deletes a comment. Allowed for the comment's author and for admins;
// replies and comment likes go with it via the store's cascade policy.
func (s CommentService) Remove(requesterID uuid.UUID, requesterRole string, commentID uuid.UUID) error {
	return s.db.Transaction(func(tx database.Database) error {
		comment, err := tx.CommentRepo().FindByID(commentID)
		if err != nil {
			return errs.NewDatabaseError("find", "comment", err)
		}
		if comment == nil {
			return errs.CommentNotFound()
		}

		if requesterRole != models.RoleAdmin && comment.AuthorID != requesterID {
			return errs.InvalidCreds()
		}

		if err := tx.CommentRepo().Delete(commentID); err != nil {
			return errs.NewDatabaseError("delete", "comment", err)
		}
		return nil
	})
}
