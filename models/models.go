package models

// All returns every model in dependency order for schema migration.
func All() []any {
	return []any{
		&Role{},
		&User{},
		&Blog{},
		&Comment{},
		&Like{},
		&CommentLike{},
	}
}
