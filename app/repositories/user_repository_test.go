package repositories_test

import (
	"context"
	"testing"

	"arcana/app/models/user"
	"arcana/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository(t *testing.T) {
	repo := repositories.NewUserRepository(setupDB(t))
	ctx := context.Background()

	u := &user.User{Email: "seer@example.com", Username: "seer", Password: "secret-pass"}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEmpty(t, u.ID)
	assert.NotEqual(t, "secret-pass", u.Password)

	found, err := repo.FindByEmail(ctx, "seer@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "uk", found.PreferredLanguage)
	assert.True(t, found.ComparePassword("secret-pass"))

	exists, err := repo.IsEmailExist(ctx, "seer@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.Error(t, repo.Create(ctx, &user.User{Email: "seer@example.com", Password: "another-pass"}))

	found.Username = "oracle"
	require.NoError(t, repo.Save(ctx, found))
	again, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "oracle", again.Username)
	assert.True(t, again.ComparePassword("secret-pass"))

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
