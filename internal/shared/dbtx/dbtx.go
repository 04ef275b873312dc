package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a gorm handle whose statements run on tx. Services own the
// *sql.Tx (begin/commit/rollback); repositories only borrow it.
//
// The Session call with a Context forces gorm to clone the statement, so
// swapping ConnPool never leaks into the shared root handle.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	bound := db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	bound.Statement.ConnPool = tx
	return bound
}
