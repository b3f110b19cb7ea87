package audit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookmarks/internal/entities"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "audit.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.AuditEvent{}))
	return NewRepository(db)
}

func TestLogAndGetEvents(t *testing.T) {
	repo := newTestRepository(t)

	event := &entities.AuditEvent{
		UserID:      1,
		EventType:   entities.AuditEventImport,
		Action:      "pocket_import",
		Description: "Imported pocket export",
		Status:      entities.AuditStatusSuccess,
	}
	require.NoError(t, repo.LogEvent(event))
	assert.False(t, event.CreatedAt.IsZero(), "LogEvent should stamp the creation time")

	events, total, err := repo.GetEvents(1, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, events, 1)
	assert.Equal(t, "pocket_import", events[0].Action)
}

func TestGetEventsScopedToUser(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.LogEvent(&entities.AuditEvent{UserID: 1, EventType: entities.AuditEventImport}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{UserID: 2, EventType: entities.AuditEventDelete}))

	events, total, err := repo.GetEvents(2, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, events, 1)
	assert.Equal(t, entities.AuditEventDelete, events[0].EventType)
}

func TestDeleteOldEvents(t *testing.T) {
	repo := newTestRepository(t)

	old := &entities.AuditEvent{
		UserID:    1,
		EventType: entities.AuditEventImport,
		CreatedAt: time.Now().AddDate(0, 0, -60),
	}
	recent := &entities.AuditEvent{
		UserID:    1,
		EventType: entities.AuditEventImport,
	}
	require.NoError(t, repo.LogEvent(old))
	require.NoError(t, repo.LogEvent(recent))

	removed, err := repo.DeleteOldEvents(time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	_, total, err := repo.GetEvents(1, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
