package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloghive/backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindPage returns one page of blogs plus the total count. Soft-deleted rows
// are excluded by gorm.
func (r *BlogRepo) FindPage(offset, limit int) ([]models.Blog, int64, error) {
	var total int64
	if err := r.db.Model(&models.Blog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var blogs []models.Blog
	err := r.db.Order("created_at").Offset(offset).Limit(limit).Find(&blogs).Error
	return blogs, total, err
}

// FindByID returns the blog with the given id, or nil if absent or
// soft-deleted.
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindByIDWithComments returns the blog with its comments collection eagerly
// loaded, or nil if absent or soft-deleted.
func (r *BlogRepo) FindByIDWithComments(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Comments").First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// ExistsByName reports whether a non-deleted blog with the given name exists.
func (r *BlogRepo) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Add inserts a new blog into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Delete soft-deletes a blog by id: deleted_at is set and the row retained.
func (r *BlogRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}
