package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloghive/backend/models"
)

type CommentLikeRepo struct {
	db *gorm.DB
}

func NewCommentLikeRepo(db *gorm.DB) *CommentLikeRepo {
	return &CommentLikeRepo{db}
}

// FindByUserAndComment returns the like for the (user, comment) pair, or nil
// if the user has not liked the comment.
func (r *CommentLikeRepo) FindByUserAndComment(userID, commentID uuid.UUID) (*models.CommentLike, error) {
	var like models.CommentLike
	err := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// Add inserts a new comment like into the database
func (r *CommentLikeRepo) Add(like *models.CommentLike) error {
	return r.db.Create(like).Error
}

// Delete removes a comment like by id
func (r *CommentLikeRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CommentLike{}, "id = ?", id).Error
}
