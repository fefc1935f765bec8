package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"household-app-go/internal/apperr"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repo"
)

type note struct {
	repo.Base
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	AuthorID *string `json:"author_id"`
	Pinned   bool    `json:"pinned"`
}

var _ repo.Repository[note, *note] = (*Engine[note, *note])(nil)

func newNoteEngine() *Engine[note, *note] {
	return NewEngine[note, *note](kvstore.NewMemory(), "notes")
}

func TestCreateThenFindByIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	engine := newNoteEngine()

	created, err := engine.Create(ctx, &note{Title: "groceries", Body: "milk"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := engine.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *found)
}

func TestFindByIDMissing(t *testing.T) {
	engine := newNoteEngine()

	_, err := engine.FindByID(context.Background(), "nope")

	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestFindAllFilter(t *testing.T) {
	ctx := context.Background()
	engine := newNoteEngine()
	author := "u1"

	_, err := engine.Create(ctx, &note{Title: "a", AuthorID: &author, Pinned: true})
	require.NoError(t, err)
	_, err = engine.Create(ctx, &note{Title: "b", AuthorID: &author})
	require.NoError(t, err)
	_, err = engine.Create(ctx, &note{Title: "c", Pinned: true})
	require.NoError(t, err)

	got, err := engine.FindAll(ctx, repo.Filter{"author_id": "u1", "pinned": true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
}

func TestUpdateMergesAndRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	engine := newNoteEngine()

	created, err := engine.Create(ctx, &note{Title: "a", Body: "keep me"})
	require.NoError(t, err)

	updated, err := engine.Update(ctx, created.ID, repo.Changes{"title": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "keep me", updated.Body)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateCannotRewriteIdentity(t *testing.T) {
	ctx := context.Background()
	engine := newNoteEngine()

	created, err := engine.Create(ctx, &note{Title: "a"})
	require.NoError(t, err)

	updated, err := engine.Update(ctx, created.ID, repo.Changes{"id": "hijack", "created_at": "2001-01-01T00:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateMissing(t *testing.T) {
	engine := newNoteEngine()

	_, err := engine.Update(context.Background(), "nope", repo.Changes{"title": "x"})

	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestUpsertDispatch(t *testing.T) {
	ctx := context.Background()
	engine := newNoteEngine()

	// no id: create
	first, err := engine.Upsert(ctx, &note{Title: "fresh"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// id present in the table: update in place
	first.Title = "revised"
	second, err := engine.Upsert(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "revised", second.Title)

	all, err := engine.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// id absent from the table: create under that id
	third, err := engine.Upsert(ctx, &note{Base: repo.Base{ID: "external-id"}, Title: "imported"})
	require.NoError(t, err)
	assert.Equal(t, "external-id", third.ID)

	all, err = engine.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	engine := newNoteEngine()

	created, err := engine.Create(ctx, &note{Title: "a"})
	require.NoError(t, err)

	require.NoError(t, engine.Delete(ctx, created.ID))

	err = engine.Delete(ctx, created.ID)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestCreateMany(t *testing.T) {
	ctx := context.Background()
	engine := newNoteEngine()

	created, err := engine.CreateMany(ctx, []*note{{Title: "a"}, {Title: "b"}})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEqual(t, created[0].ID, created[1].ID)

	all, err := engine.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEnginesAliasSameTable(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	first := NewEngine[note, *note](store, "notes")
	second := NewEngine[note, *note](store, "notes")

	created, err := first.Create(ctx, &note{Title: "shared"})
	require.NoError(t, err)

	found, err := second.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "shared", found.Title)
}

func TestCorruptTableDegradesToUnknown(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, "table:notes", "{not json"))
	engine := NewEngine[note, *note](store, "notes")

	_, err := engine.FindAll(ctx, nil)

	assert.Equal(t, apperr.CodeUnknown, apperr.CodeOf(err))
}
