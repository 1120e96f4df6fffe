package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloghive/backend/models"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db}
}

// FindByUserAndBlog returns the like for the (user, blog) pair, or nil if the
// user has not liked the blog.
func (r *LikeRepo) FindByUserAndBlog(userID, blogID uuid.UUID) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND blog_id = ?", userID, blogID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// FindByBlogWithUsers returns every like on the blog with the liking user
// eagerly loaded.
func (r *LikeRepo) FindByBlogWithUsers(blogID uuid.UUID) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Preload("User").Where("blog_id = ?", blogID).Find(&likes).Error
	return likes, err
}

// Add inserts a new like into the database
func (r *LikeRepo) Add(like *models.Like) error {
	return r.db.Create(like).Error
}

// Delete removes a like by id
func (r *LikeRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Like{}, "id = ?", id).Error
}
