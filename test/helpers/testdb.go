// Package helpers holds shared test fixtures, the same role the
// teacher's test/helpers package plays: one place for an in-memory
// test database rather than every _test.go file wiring its own.
package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/ShadyMccoy/colony-controller/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory sqlite database for a single test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("helpers: open test db: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Logf("helpers: close test db: %v", err)
		}
	})
	return db
}
