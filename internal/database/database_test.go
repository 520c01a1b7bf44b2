package database

import (
	"testing"

	"vglist/backend/internal/logger"
	"vglist/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigratesSchema(t *testing.T) {
	db, err := Open(sqlite.Open(":memory:"), logger.Nop())
	require.NoError(t, err)
	defer Close(db)

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Game{}, "Slug"))
	assert.True(t, db.Migrator().HasColumn(&models.Status{}, "has_backlogged"))
}
