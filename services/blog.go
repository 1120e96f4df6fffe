package services

import (
	"github.com/google/uuid"

	"github.com/bloghive/backend/database"
	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

// BlogPage is one page of blogs.
type BlogPage struct {
	Items []models.Blog `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
	Pages int           `json:"pages"`
}

// BlogService handles blog creation, listing and soft deletion.
type BlogService struct {
	db database.Database
}

func NewBlogService(db database.Database) BlogService {
	return BlogService{db: db}
}

// Create adds a blog. Blog names are globally unique; the unique index is the
// backstop against a racing duplicate create.
func (s BlogService) Create(name, content string, authorID uuid.UUID) (*models.Blog, error) {
	var blog *models.Blog
	err := s.db.Transaction(func(tx database.Database) error {
		exists, err := tx.BlogRepo().ExistsByName(name)
		if err != nil {
			return errs.NewDatabaseError("find", "blog", err)
		}
		if exists {
			return errs.DuplicateBlog()
		}

		blog = models.NewBlog(name, content, authorID)
		if err := tx.BlogRepo().Add(blog); err != nil {
			if errs.IsDuplicateKey(err) {
				return errs.DuplicateBlog()
			}
			return errs.NewDatabaseError("create", "blog", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return blog, nil
}

// GetAll returns one page of non-deleted blogs.
func (s BlogService) GetAll(page, size int) (*BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 50
	}

	blogs, total, err := s.db.BlogRepo().FindPage((page-1)*size, size)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blogs", err)
	}

	pages := int((total + int64(size) - 1) / int64(size))
	return &BlogPage{Items: blogs, Total: total, Page: page, Size: size, Pages: pages}, nil
}

// GetByID returns a non-deleted blog by id.
func (s BlogService) GetByID(blogID uuid.UUID) (*models.Blog, error) {
	blog, err := s.db.BlogRepo().FindByID(blogID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	if blog == nil {
		return nil, errs.BlogNotFound()
	}
	return blog, nil
}

// DeleteByID soft-deletes a blog. Comments and likes stay in place; the blog
// simply stops resolving.
func (s BlogService) DeleteByID(blogID uuid.UUID) error {
	return s.db.Transaction(func(tx database.Database) error {
		blog, err := tx.BlogRepo().FindByID(blogID)
		if err != nil {
			return errs.NewDatabaseError("find", "blog", err)
		}
		if blog == nil {
			return errs.BlogNotFound()
		}

		if err := tx.BlogRepo().Delete(blogID); err != nil {
			return errs.NewDatabaseError("delete", "blog", err)
		}
		return nil
	})
}
