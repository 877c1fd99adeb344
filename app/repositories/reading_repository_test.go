package repositories_test

import (
	"context"
	"testing"
	"time"

	"arcana/app/models/reading"
	"arcana/app/repositories"
	"arcana/pkg/database"
	"arcana/pkg/helpers"
	"arcana/pkg/tarot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory(t.Name())
	require.NoError(t, err)
	return db
}

func threeCards(t *testing.T) reading.Cards {
	t.Helper()
	catalog, err := tarot.LoadCatalog()
	require.NoError(t, err)
	cards, err := tarot.NewDrawer(catalog, nil).Draw(3, tarot.SpreadTemporal)
	require.NoError(t, err)
	return cards
}

func newReading(t *testing.T, userID, sessionID string) *reading.Reading {
	return &reading.Reading{
		UserID:         helpers.StringPtr(userID),
		SessionID:      helpers.StringPtr(sessionID),
		Cards:          threeCards(t),
		SpreadType:     string(tarot.SpreadTemporal),
		Language:       string(tarot.LanguageEn),
		Interpretation: "text",
	}
}

func TestReadingRepository_CreateAndFind(t *testing.T) {
	repo := repositories.NewReadingRepository(setupDB(t))
	ctx := context.Background()

	rd := newReading(t, "", "session-1")
	rd.Question = helpers.StringPtr("what now?")
	require.NoError(t, repo.Create(ctx, rd))
	require.NotEmpty(t, rd.ID)

	found, err := repo.FindByID(ctx, rd.ID)
	require.NoError(t, err)
	assert.Nil(t, found.UserID)
	assert.Equal(t, "session-1", *found.SessionID)
	assert.Equal(t, "what now?", *found.Question)
	require.Len(t, found.Cards, 3)
	assert.Equal(t, rd.Cards[0].ID, found.Cards[0].ID)
	assert.Equal(t, rd.Cards[2].Position, found.Cards[2].Position)
	assert.Equal(t, rd.Cards[1].Reversed, found.Cards[1].Reversed)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReadingRepository_CreateRejectsInvalidOwnership(t *testing.T) {
	repo := repositories.NewReadingRepository(setupDB(t))

	assert.Error(t, repo.Create(context.Background(), newReading(t, "", "")))
	assert.Error(t, repo.Create(context.Background(), newReading(t, "user", "session")))

	rd := newReading(t, "user", "")
	rd.Cards = rd.Cards[:2]
	assert.Error(t, repo.Create(context.Background(), rd))
}

func TestReadingRepository_ListByOwner(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewReadingRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		rd := newReading(t, "user-1", "")
		rd.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		rd.Interpretation = string(rune('a' + i))
		require.NoError(t, repo.Create(ctx, rd))
	}
	require.NoError(t, repo.Create(ctx, newReading(t, "user-2", "")))
	require.NoError(t, repo.Create(ctx, newReading(t, "", "anon")))

	page1, total, err := repo.ListByOwner(ctx, "user-1", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "e", page1[0].Interpretation)
	assert.Equal(t, "d", page1[1].Interpretation)

	page3, _, err := repo.ListByOwner(ctx, "user-1", 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "a", page3[0].Interpretation)

	none, total, err := repo.ListByOwner(ctx, "nobody", 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestReadingRepository_DeleteAndCount(t *testing.T) {
	repo := repositories.NewReadingRepository(setupDB(t))
	ctx := context.Background()

	a := newReading(t, "user-1", "")
	b := newReading(t, "user-1", "")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	count, err := repo.CountByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, repo.DeleteByID(ctx, a.ID))
	_, err = repo.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err = repo.CountByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestReadingRepository_ClaimSession(t *testing.T) {
	repo := repositories.NewReadingRepository(setupDB(t))
	ctx := context.Background()

	mine := newReading(t, "", "session-a")
	other := newReading(t, "", "session-b")
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, other))

	claimed, err := repo.ClaimSession(ctx, "session-a", "user-9")
	require.NoError(t, err)
	assert.EqualValues(t, 1, claimed)

	found, err := repo.FindByID(ctx, mine.ID)
	require.NoError(t, err)
	require.NotNil(t, found.UserID)
	assert.Equal(t, "user-9", *found.UserID)
	assert.Nil(t, found.SessionID)

	found, err = repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Nil(t, found.UserID)

	claimed, err = repo.ClaimSession(ctx, "", "user-9")
	require.NoError(t, err)
	assert.Zero(t, claimed)
}
