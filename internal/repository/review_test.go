package repository

import (
	"context"
	"testing"

	"vglist/backend/internal/apperr"
	"vglist/backend/internal/models"
	"vglist/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestReviewLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	testutil.SeedGames(t, db, testutil.Game(1, "a"), testutil.Game(2, "b"))
	repo := NewReviewRepository(db)

	review := &models.Review{AuthorID: "u1", GameID: 1, Description: "Great", Score: ptr.To(9)}
	require.NoError(t, repo.Create(ctx, review))
	require.NoError(t, repo.Create(ctx, &models.Review{AuthorID: "u2", GameID: 1, Description: "Meh"}))
	require.NoError(t, repo.Create(ctx, &models.Review{AuthorID: "u1", GameID: 2, Description: "Fine"}))

	updated, err := repo.Update(ctx, review.ID, "u1", ptr.To("Great game"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Great game", updated.Description)
	assert.Equal(t, 9, *updated.Score)

	_, err = repo.Update(ctx, review.ID, "u2", ptr.To("hijack"), nil)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	byGame, err := repo.ListByGame(ctx, 1, Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, byGame.Items, 2)
	assert.Equal(t, "u2", byGame.Items[0].AuthorID, "newest first")

	byAuthor, err := repo.ListByAuthor(ctx, "u1", Page{Limit: 1})
	require.NoError(t, err)
	require.Len(t, byAuthor.Items, 1)
	assert.Equal(t, "b", byAuthor.Items[0].Game.Slug)
	require.NotNil(t, byAuthor.NextCursor)
	assert.Equal(t, int64(review.ID), *byAuthor.NextCursor)

	count, err := repo.CountByAuthor(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Fine", recent[0].Description)

	found, err := repo.GetByAuthorAndGame(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, review.ID, found.ID)

	deleted, err := repo.Delete(ctx, review.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, review.ID, deleted.ID)

	found, err = repo.GetByAuthorAndGame(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Nil(t, found)
}
