package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

func TestCreateBlogRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	role := seedRole(t, db, models.RoleUser)
	user := seedUser(t, db, "user@example.com", "S3cret!pass", role)

	blog, err := svc.Create("my-first-blog", "hello world", user.ID)
	if err != nil {
		t.Fatalf("creating blog: %v", err)
	}
	if blog.Name != "my-first-blog" || blog.AuthorID != user.ID {
		t.Errorf("blog = %+v, want name and author to round-trip", blog)
	}

	_, err = svc.Create("my-first-blog", "different content", user.ID)
	if !errors.Is(err, errs.ErrDuplicateBlog) {
		t.Errorf("duplicate create: err = %v, want ErrDuplicateBlog", err)
	}
}

func TestGetAllPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	role := seedRole(t, db, models.RoleUser)
	user := seedUser(t, db, "user@example.com", "S3cret!pass", role)

	for i := 0; i < 5; i++ {
		seedBlog(t, db, fmt.Sprintf("blog-%d", i), user)
	}

	page, err := svc.GetAll(1, 2)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(page.Items) != 2 || page.Total != 5 || page.Pages != 3 {
		t.Errorf("page 1 = {items:%d total:%d pages:%d}, want {2 5 3}", len(page.Items), page.Total, page.Pages)
	}

	last, err := svc.GetAll(3, 2)
	if err != nil {
		t.Fatalf("GetAll last page returned error: %v", err)
	}
	if len(last.Items) != 1 {
		t.Errorf("last page items = %d, want 1", len(last.Items))
	}

	// Out-of-range parameters fall back to defaults.
	defaulted, err := svc.GetAll(0, 0)
	if err != nil {
		t.Fatalf("GetAll with zero params returned error: %v", err)
	}
	if defaulted.Page != 1 || defaulted.Size != 50 || len(defaulted.Items) != 5 {
		t.Errorf("defaulted page = %+v, want page 1 size 50 with all items", defaulted)
	}
}

func TestGetByIDMissingBlog(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)

	_, err := svc.GetByID(uuid.New())
	if !errors.Is(err, errs.ErrBlogNotFound) {
		t.Errorf("err = %v, want ErrBlogNotFound", err)
	}
}

func TestDeleteBlogIsSoftAndHidesIt(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	role := seedRole(t, db, models.RoleUser)
	user := seedUser(t, db, "user@example.com", "S3cret!pass", role)
	blog := seedBlog(t, db, "ephemeral", user)

	if err := svc.DeleteByID(blog.ID); err != nil {
		t.Fatalf("deleting blog: %v", err)
	}

	if _, err := svc.GetByID(blog.ID); !errors.Is(err, errs.ErrBlogNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrBlogNotFound", err)
	}

	page, err := svc.GetAll(1, 50)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if page.Total != 0 {
		t.Errorf("total after delete = %d, want 0", page.Total)
	}

	// The name stays reserved: the row is hidden, not gone.
	if _, err := svc.Create("ephemeral", "again", user.ID); !errors.Is(err, errs.ErrDuplicateBlog) {
		t.Errorf("recreating deleted name: err = %v, want ErrDuplicateBlog", err)
	}

	if err := svc.DeleteByID(blog.ID); !errors.Is(err, errs.ErrBlogNotFound) {
		t.Errorf("double delete: err = %v, want ErrBlogNotFound", err)
	}
}
