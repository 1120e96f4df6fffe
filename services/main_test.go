package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bloghive/backend/auth"
	"github.com/bloghive/backend/database"
	"github.com/bloghive/backend/models"
)

// testHasher is shared across tests; bcrypt is deliberately slow, no point
// paying the setup cost per test.
var testHasher = auth.NewHasher()

// newTestDB opens an isolated in-memory SQLite database with the full schema
// and foreign keys enforced.
func newTestDB(t *testing.T) database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrating test schema: %v", err)
	}

	return database.New(db)
}

func seedRole(t *testing.T, db database.Database, name string) *models.Role {
	t.Helper()

	role := models.NewRole(name)
	if err := db.RoleRepo().Add(role); err != nil {
		t.Fatalf("seeding role %s: %v", name, err)
	}
	return role
}

func seedUser(t *testing.T, db database.Database, email, password string, role *models.Role) *models.User {
	t.Helper()

	hashed, err := testHasher.Hash(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := models.NewUser(email, hashed, role.ID)
	if err := db.UserRepo().Add(user); err != nil {
		t.Fatalf("seeding user %s: %v", email, err)
	}
	user.Role = role
	return user
}

func seedBlog(t *testing.T, db database.Database, name string, author *models.User) *models.Blog {
	t.Helper()

	blog := models.NewBlog(name, "some content", author.ID)
	if err := db.BlogRepo().Add(blog); err != nil {
		t.Fatalf("seeding blog %s: %v", name, err)
	}
	return blog
}
