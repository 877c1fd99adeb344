package tarot_test

import (
	"testing"

	"arcana/pkg/tarot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCatalog(t *testing.T) *tarot.Catalog {
	t.Helper()
	catalog, err := tarot.LoadCatalog()
	require.NoError(t, err)
	return catalog
}

func TestLoadCatalog_FullDeck(t *testing.T) {
	catalog := loadCatalog(t)
	cards := catalog.All()
	require.Len(t, cards, tarot.DeckSize)

	seen := make(map[int]bool, len(cards))
	for i, card := range cards {
		assert.Equal(t, i+1, card.ID, "catalog order follows ids")
		assert.False(t, seen[card.ID], "duplicate id %d", card.ID)
		seen[card.ID] = true

		assert.NotEmpty(t, card.Name)
		assert.NotEmpty(t, card.NameUk)
		assert.NotEmpty(t, card.MeaningUpright)
		assert.NotEmpty(t, card.MeaningUprightUk)
		assert.NotEmpty(t, card.MeaningReversed)
		assert.NotEmpty(t, card.MeaningReversedUk)
		assert.NotEmpty(t, card.Keywords)
		assert.NotEmpty(t, card.KeywordsUk)
	}
}

func TestCatalog_SuitLayout(t *testing.T) {
	catalog := loadCatalog(t)

	major := catalog.BySuit(tarot.SuitMajorArcana)
	require.Len(t, major, 22)
	for i, card := range major {
		assert.Equal(t, i, card.Number)
	}
	assert.Equal(t, "The Fool", major[0].Name)
	assert.Equal(t, "The World", major[21].Name)

	for _, suit := range tarot.Suits[1:] {
		cards := catalog.BySuit(suit)
		require.Len(t, cards, 14, "suit %s", suit)
		for i, card := range cards {
			assert.Equal(t, i+1, card.Number)
			assert.Equal(t, suit, card.Suit)
		}
	}

	assert.Empty(t, catalog.BySuit("Coins"))
}

func TestCatalog_ByID(t *testing.T) {
	catalog := loadCatalog(t)

	card, err := catalog.ByID(23)
	require.NoError(t, err)
	assert.Equal(t, "Ace of Cups", card.Name)
	assert.Equal(t, "Туз Кубків", card.NameUk)

	_, err = catalog.ByID(79)
	assert.ErrorIs(t, err, tarot.ErrNotFound)
	_, err = catalog.ByID(0)
	assert.ErrorIs(t, err, tarot.ErrNotFound)
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	catalog := loadCatalog(t)

	cards := catalog.All()
	cards[0].Name = "changed"

	card, err := catalog.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, "The Fool", card.Name)
}

func TestCatalog_Search(t *testing.T) {
	catalog := loadCatalog(t)

	tests := []struct {
		name     string
		query    string
		language tarot.Language
		want     int
	}{
		{"english case insensitive", "queen", tarot.LanguageEn, 4},
		{"english substring", "of swords", tarot.LanguageEn, 14},
		{"ukrainian name", "кубків", tarot.LanguageUk, 14},
		{"english query against ukrainian names", "queen", tarot.LanguageUk, 0},
		{"no match", "joker", tarot.LanguageEn, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, catalog.Search(tt.query, tt.language), tt.want)
		})
	}
}

func TestNewCatalog_RejectsDuplicateIDs(t *testing.T) {
	_, err := tarot.NewCatalog([]tarot.Card{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
	assert.Error(t, err)

	_, err = tarot.NewCatalog([]tarot.Card{{ID: 0, Name: "zero"}})
	assert.Error(t, err)
}
