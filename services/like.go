package services

import (
	"github.com/google/uuid"

	"github.com/bloghive/backend/database"
	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

// LikeResult is the outcome of a blog like toggle.
type LikeResult struct {
	BlogID uuid.UUID `json:"blogId"`
	Liked  bool      `json:"liked"`
}

// BlogLikes lists who liked a blog.
type BlogLikes struct {
	BlogID     uuid.UUID           `json:"blogId"`
	Users      []models.PublicUser `json:"users"`
	TotalLikes int                 `json:"totalLikes"`
}

// LikeService handles blog-level likes.
type LikeService struct {
	db database.Database
}

func NewLikeService(db database.Database) LikeService {
	return LikeService{db: db}
}

// Toggle flips the requesting user's like on a blog: liked becomes unliked
// and vice versa. The check-then-act is not locked; the unique constraint on
// (user, blog) is the backstop, and losing the insert race collapses into the
// liked outcome.
func (s LikeService) Toggle(userID, blogID uuid.UUID) (*LikeResult, error) {
	result := &LikeResult{BlogID: blogID}
	err := s.db.Transaction(func(tx database.Database) error {
		blog, err := tx.BlogRepo().FindByID(blogID)
		if err != nil {
			return errs.NewDatabaseError("find", "blog", err)
		}
		if blog == nil {
			return errs.BlogNotFound()
		}

		existing, err := tx.LikeRepo().FindByUserAndBlog(userID, blogID)
		if err != nil {
			return errs.NewDatabaseError("find", "like", err)
		}

		if existing != nil {
			if err := tx.LikeRepo().Delete(existing.ID); err != nil {
				return errs.NewDatabaseError("delete", "like", err)
			}
			result.Liked = false
			return nil
		}

		if err := tx.LikeRepo().Add(models.NewLike(userID, blogID)); err != nil && !errs.IsDuplicateKey(err) {
			return errs.NewDatabaseError("create", "like", err)
		}
		result.Liked = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetLikes returns every liking user's public profile and the total count.
// A blog nobody liked yields an empty list, not an error.
func (s LikeService) GetLikes(blogID uuid.UUID) (*BlogLikes, error) {
	likes, err := s.db.LikeRepo().FindByBlogWithUsers(blogID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "likes", err)
	}

	users := make([]models.PublicUser, 0, len(likes))
	for _, like := range likes {
		if like.User != nil {
			users = append(users, like.User.Public())
		}
	}

	return &BlogLikes{BlogID: blogID, Users: users, TotalLikes: len(likes)}, nil
}
