package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	gormlogger "gorm.io/gorm/logger"
)

func TestConnectAndMigrate(t *testing.T) {
	require.NoError(t, Connect(sqlite.Open("file:connect_test?mode=memory&cache=shared"), gormlogger.Discard))
	require.NotNil(t, DB)
	require.NotNil(t, SQLDB)

	require.NoError(t, AutoMigrate(DB))
	assert.True(t, DB.Migrator().HasTable("readings"))
	assert.True(t, DB.Migrator().HasTable("users"))
}

func TestOpenInMemory_Isolated(t *testing.T) {
	a, err := OpenInMemory("isolated_a")
	require.NoError(t, err)
	b, err := OpenInMemory("isolated_b")
	require.NoError(t, err)

	require.NoError(t, a.Exec("INSERT INTO users (id, email, password_hash) VALUES ('1', 'a@example.com', 'x')").Error)

	var count int64
	require.NoError(t, b.Table("users").Count(&count).Error)
	assert.Zero(t, count)
}
