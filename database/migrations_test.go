package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_create_users_table.sql", "00002_seed_demo_users.sql"}, names)
}

func TestMigrations_HaveUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)

	for _, e := range entries {
		body, err := fs.ReadFile(migrations, migrationsDir+"/"+e.Name())
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), e.Name())
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), e.Name())
	}
}

func TestMigrations_EmailIsUnique(t *testing.T) {
	body, err := fs.ReadFile(migrations, migrationsDir+"/00001_create_users_table.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "UNIQUE (email)")
}

func TestSetup(t *testing.T) {
	require.NoError(t, setup())
	require.NoError(t, setup())
}
