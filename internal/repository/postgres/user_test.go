package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	queries := &Queries{}
	repo := NewUserRepository(db, queries)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, queries, repo.queries)
}

func TestUserRepository_SearchByField_UnsupportedField(t *testing.T) {
	repo := NewUserRepository(&Connection{}, &Queries{})

	users, err := repo.SearchByField(context.Background(), model.SearchField("email"), "x")

	require.Error(t, err)
	assert.Nil(t, users)
	assert.Contains(t, err.Error(), "unsupported search field")
}
