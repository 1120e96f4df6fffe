package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/bloghive/backend/errs"
	"github.com/bloghive/backend/models"
)

func TestBlogLikeToggle(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	role := seedRole(t, db, models.RoleUser)
	author := seedUser(t, db, "author@example.com", "S3cret!pass", role)
	liker := seedUser(t, db, "liker@example.com", "S3cret!pass", role)
	blog := seedBlog(t, db, "popular", author)

	first, err := svc.Toggle(liker.ID, blog.ID)
	if err != nil {
		t.Fatalf("first toggle returned error: %v", err)
	}
	if first.BlogID != blog.ID || !first.Liked {
		t.Errorf("first toggle = %+v, want liked=true", first)
	}

	likes, err := svc.GetLikes(blog.ID)
	if err != nil {
		t.Fatalf("GetLikes returned error: %v", err)
	}
	if likes.TotalLikes != 1 || len(likes.Users) != 1 {
		t.Fatalf("likes = %+v, want one user", likes)
	}
	if likes.Users[0].Email != liker.Email {
		t.Errorf("liking user = %s, want %s", likes.Users[0].Email, liker.Email)
	}

	second, err := svc.Toggle(liker.ID, blog.ID)
	if err != nil {
		t.Fatalf("second toggle returned error: %v", err)
	}
	if second.Liked {
		t.Errorf("second toggle = %+v, want liked=false", second)
	}

	likes, err = svc.GetLikes(blog.ID)
	if err != nil {
		t.Fatalf("GetLikes after unlike returned error: %v", err)
	}
	if likes.TotalLikes != 0 || len(likes.Users) != 0 {
		t.Errorf("likes after unlike = %+v, want none", likes)
	}
}

func TestBlogLikeOnMissingBlog(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	role := seedRole(t, db, models.RoleUser)
	user := seedUser(t, db, "user@example.com", "S3cret!pass", role)

	_, err := svc.Toggle(user.ID, uuid.New())
	if !errors.Is(err, errs.ErrBlogNotFound) {
		t.Errorf("err = %v, want ErrBlogNotFound", err)
	}
}

func TestBlogLikesAreIndependentPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	role := seedRole(t, db, models.RoleUser)
	author := seedUser(t, db, "author@example.com", "S3cret!pass", role)
	alice := seedUser(t, db, "alice@example.com", "S3cret!pass", role)
	bob := seedUser(t, db, "bob@example.com", "S3cret!pass", role)
	blog := seedBlog(t, db, "shared", author)

	for _, u := range []*models.User{alice, bob} {
		if _, err := svc.Toggle(u.ID, blog.ID); err != nil {
			t.Fatalf("toggling like for %s: %v", u.Email, err)
		}
	}

	if _, err := svc.Toggle(alice.ID, blog.ID); err != nil {
		t.Fatalf("alice unliking: %v", err)
	}

	likes, err := svc.GetLikes(blog.ID)
	if err != nil {
		t.Fatalf("GetLikes returned error: %v", err)
	}
	if likes.TotalLikes != 1 || likes.Users[0].Email != bob.Email {
		t.Errorf("likes = %+v, want only bob", likes)
	}
}

func TestGetLikesForUnlikedBlog(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	role := seedRole(t, db, models.RoleUser)
	author := seedUser(t, db, "author@example.com", "S3cret!pass", role)
	blog := seedBlog(t, db, "quiet", author)

	likes, err := svc.GetLikes(blog.ID)
	if err != nil {
		t.Fatalf("GetLikes returned error: %v", err)
	}
	if likes.TotalLikes != 0 || len(likes.Users) != 0 {
		t.Errorf("likes = %+v, want none", likes)
	}
}
