package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potetoapp/poteto-api/internal/domain"
	"github.com/potetoapp/poteto-api/internal/platform/postgres"
	"github.com/potetoapp/poteto-api/internal/store"
	"github.com/potetoapp/poteto-api/internal/testutils"
)

func TestPostgresCommentStoreCreateAndGet(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		author := testutils.MustInsertUser(t, tx, "commenter")
		tweet := testutils.MustInsertTweet(t, tx, author.ID, "a tweet")
		commentStore := postgres.NewPostgresCommentStore(tx, nil)

		comment, err := domain.NewComment(tweet.ID, author.ID, "nice one", time.Now().UTC())
		require.NoError(t, err)

		id, err := commentStore.Create(ctx, comment)
		require.NoError(t, err)
		assert.Positive(t, id)

		got, err := commentStore.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, tweet.ID, got.TweetID)
		assert.Equal(t, author.ID, got.AuthorID)
		assert.Equal(t, "nice one", got.Content)
	})
}

func TestPostgresCommentStoreCreateUnknownTweet(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		author := testutils.MustInsertUser(t, tx, "lost")
		commentStore := postgres.NewPostgresCommentStore(tx, nil)

		comment, err := domain.NewComment(999999999, author.ID, "into the void", time.Now().UTC())
		require.NoError(t, err)

		_, err = commentStore.Create(ctx, comment)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresCommentStoreListByTweetOrdering(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		author := testutils.MustInsertUser(t, tx, "threader")
		tweet := testutils.MustInsertTweet(t, tx, author.ID, "thread root")
		commentStore := postgres.NewPostgresCommentStore(tx, nil)

		base := time.Now().UTC().Add(-time.Hour)
		for i, content := range []string{"first reply", "second reply", "third reply"} {
			comment, err := domain.NewComment(tweet.ID, author.ID, content, base.Add(time.Duration(i)*time.Minute))
			require.NoError(t, err)
			_, err = commentStore.Create(ctx, comment)
			require.NoError(t, err)
		}

		comments, err := commentStore.ListByTweet(ctx, tweet.ID)
		require.NoError(t, err)
		require.Len(t, comments, 3)
		// Conversation order, oldest first.
		assert.Equal(t, "first reply", comments[0].Content)
		assert.Equal(t, "third reply", comments[2].Content)
	})
}

func TestPostgresCommentStoreListByTweetEmpty(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		author := testutils.MustInsertUser(t, tx, "silent")
		tweet := testutils.MustInsertTweet(t, tx, author.ID, "no replies")
		commentStore := postgres.NewPostgresCommentStore(tx, nil)

		comments, err := commentStore.ListByTweet(ctx, tweet.ID)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})
}

func TestPostgresCommentStoreUpdateMissing(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		commentStore := postgres.NewPostgresCommentStore(tx, nil)

		comment, err := domain.NewComment(1, 1, "ghost", time.Now().UTC())
		require.NoError(t, err)
		comment.ID = 999999999

		assert.ErrorIs(t, commentStore.Update(ctx, comment), store.ErrCommentNotFound)
	})
}
