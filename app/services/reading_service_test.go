package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"arcana/pkg/tarot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReadingService(t *testing.T) (*ReadingService, *fakeReadingStore, *fakeInterpreter) {
	t.Helper()
	catalog, err := tarot.LoadCatalog()
	require.NoError(t, err)
	store := newFakeReadingStore()
	interpreter := &fakeInterpreter{text: "the reading"}
	drawer := tarot.NewDrawer(catalog, rand.New(rand.NewPCG(8, 9)))
	return NewReadingService(drawer, interpreter, store), store, interpreter
}

func bare(ids ...int) []tarot.Selection {
	out := make([]tarot.Selection, len(ids))
	for i, id := range ids {
		out[i] = tarot.Selection{ID: id}
	}
	return out
}

func TestReadingService_Draw(t *testing.T) {
	svc, _, _ := newReadingService(t)

	cards, err := svc.Draw("")
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "past", cards[0].Position)
	assert.Equal(t, tarot.SpreadTemporal, cards[0].SpreadType)
}

func TestReadingService_InterpretDefaultsAndValidation(t *testing.T) {
	svc, _, interpreter := newReadingService(t)
	ctx := context.Background()

	result, err := svc.Interpret(ctx, SpreadRequest{Cards: bare(1, 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, "the reading", result.Interpretation)
	assert.Len(t, result.Cards, 3)
	assert.Equal(t, tarot.LanguageUk, interpreter.language)
	assert.Equal(t, tarot.SpreadTemporal, interpreter.spread)

	tests := []struct {
		name string
		req  SpreadRequest
		want error
	}{
		{"two cards", SpreadRequest{Cards: bare(1, 2)}, tarot.ErrInvalidArgument},
		{"question spread without question", SpreadRequest{Cards: bare(1, 2, 3), SpreadType: tarot.SpreadQuestion}, tarot.ErrInvalidArgument},
		{"question spread with blank question", SpreadRequest{Cards: bare(1, 2, 3), SpreadType: tarot.SpreadQuestion, Question: "   "}, tarot.ErrInvalidArgument},
		{"unknown language", SpreadRequest{Cards: bare(1, 2, 3), Language: "fr"}, tarot.ErrInvalidArgument},
		{"unknown spread", SpreadRequest{Cards: bare(1, 2, 3), SpreadType: "celtic"}, tarot.ErrInvalidArgument},
		{"unknown card", SpreadRequest{Cards: bare(1, 2, 300)}, tarot.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Interpret(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 1, interpreter.calls)
}

func TestReadingService_CreateOwnership(t *testing.T) {
	svc, store, _ := newReadingService(t)
	ctx := context.Background()

	anon, err := svc.Create(ctx, SpreadRequest{Cards: bare(4, 5, 6), Question: "q", Language: tarot.LanguageEn}, Owner{SessionID: "s-1"})
	require.NoError(t, err)
	assert.Nil(t, anon.UserID)
	assert.Equal(t, "s-1", *anon.SessionID)
	assert.Equal(t, "q", *anon.Question)
	assert.Equal(t, "en", anon.Language)
	assert.Equal(t, "temporal", anon.SpreadType)

	owned, err := svc.Create(ctx, SpreadRequest{Cards: bare(4, 5, 6)}, Owner{UserID: "u-1", SessionID: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", *owned.UserID)
	assert.Nil(t, owned.SessionID)
	assert.Nil(t, owned.Question)

	_, err = svc.Create(ctx, SpreadRequest{Cards: bare(4, 5, 6)}, Owner{})
	assert.ErrorIs(t, err, tarot.ErrInvalidArgument)

	store.err = errors.New("db down")
	_, err = svc.Create(ctx, SpreadRequest{Cards: bare(4, 5, 6)}, Owner{UserID: "u-1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, tarot.ErrInvalidArgument)
}

func TestReadingService_GetOwnership(t *testing.T) {
	svc, _, _ := newReadingService(t)
	ctx := context.Background()

	public, err := svc.Create(ctx, SpreadRequest{Cards: bare(1, 2, 3)}, Owner{SessionID: "s-1"})
	require.NoError(t, err)
	private, err := svc.Create(ctx, SpreadRequest{Cards: bare(1, 2, 3)}, Owner{UserID: "alice"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, public.ID, "")
	require.NoError(t, err)
	assert.Equal(t, public.ID, got.ID)

	_, err = svc.Get(ctx, public.ID, "bob")
	assert.NoError(t, err)

	_, err = svc.Get(ctx, private.ID, "alice")
	assert.NoError(t, err)

	_, err = svc.Get(ctx, private.ID, "bob")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(ctx, private.ID, "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(ctx, "missing", "alice")
	assert.ErrorIs(t, err, ErrReadingNotFound)
}

func TestReadingService_Delete(t *testing.T) {
	svc, _, _ := newReadingService(t)
	ctx := context.Background()

	public, err := svc.Create(ctx, SpreadRequest{Cards: bare(1, 2, 3)}, Owner{SessionID: "s-1"})
	require.NoError(t, err)
	private, err := svc.Create(ctx, SpreadRequest{Cards: bare(1, 2, 3)}, Owner{UserID: "alice"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, public.ID, "alice"), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, private.ID, "bob"), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, "missing", "alice"), ErrReadingNotFound)

	require.NoError(t, svc.Delete(ctx, private.ID, "alice"))
	_, err = svc.Get(ctx, private.ID, "alice")
	assert.ErrorIs(t, err, ErrReadingNotFound)
}

func TestReadingService_History(t *testing.T) {
	svc, _, _ := newReadingService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, SpreadRequest{Cards: bare(1, 2, 3)}, Owner{UserID: "alice"})
		require.NoError(t, err)
	}

	page, err := svc.History(ctx, "alice", 0, 2)
	require.NoError(t, err)
	assert.Len(t, page.Readings, 2)
	assert.Equal(t, Pagination{Page: 1, Limit: 2, Total: 3, TotalPages: 2}, page.Pagination)

	page, err = svc.History(ctx, "alice", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageLimit, page.Pagination.Limit)
	assert.Equal(t, 1, page.Pagination.TotalPages)

	page, err = svc.History(ctx, "alice", 1, 500)
	require.NoError(t, err)
	assert.Equal(t, MaxPageLimit, page.Pagination.Limit)
}
