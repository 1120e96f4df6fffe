package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo        *UserRepo
	roleRepo        *RoleRepo
	blogRepo        *BlogRepo
	commentRepo     *CommentRepo
	likeRepo        *LikeRepo
	commentLikeRepo *CommentLikeRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:        NewUserRepo(db),
		roleRepo:        NewRoleRepo(db),
		blogRepo:        NewBlogRepo(db),
		commentRepo:     NewCommentRepo(db),
		likeRepo:        NewLikeRepo(db),
		commentLikeRepo: NewCommentLikeRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) RoleRepo() *RoleRepo {
	return d.roleRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) LikeRepo() *LikeRepo {
	return d.likeRepo
}

func (d Database) CommentLikeRepo() *CommentLikeRepo {
	return d.commentLikeRepo
}

// Transaction runs fn with a Database bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise. This is
// the per-request unit of work for check-then-act write paths.
func (d Database) Transaction(fn func(tx Database) error) error {
	return d.userRepo.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
