package testhelpers

import (
	"fmt"
	"testing"

	"github.com/foodgram/backend/internal/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SetupTestDatabase returns a migrated in-memory SQLite database private to t
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
