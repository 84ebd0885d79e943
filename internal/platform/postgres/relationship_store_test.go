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

func TestPostgresLikeStoreLifecycle(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		author := testutils.MustInsertUser(t, tx, "liked-author")
		fan := testutils.MustInsertUser(t, tx, "fan")
		tweet := testutils.MustInsertTweet(t, tx, author.ID, "likeable")
		likeStore := postgres.NewPostgresLikeStore(tx, nil)

		like, err := domain.NewLike(tweet.ID, fan.ID, time.Now().UTC())
		require.NoError(t, err)

		id, err := likeStore.Create(ctx, like)
		require.NoError(t, err)
		assert.Positive(t, id)

		got, err := likeStore.GetByTweetAndUser(ctx, tweet.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)

		likes, err := likeStore.ListByTweet(ctx, tweet.ID)
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.Equal(t, fan.ID, likes[0].UserID)

		require.NoError(t, likeStore.Delete(ctx, tweet.ID, fan.ID))
		_, err = likeStore.GetByTweetAndUser(ctx, tweet.ID, fan.ID)
		assert.ErrorIs(t, err, store.ErrLikeNotFound)
	})
}

func TestPostgresLikeStoreDoubleLike(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		author := testutils.MustInsertUser(t, tx, "double-author")
		fan := testutils.MustInsertUser(t, tx, "eager-fan")
		tweet := testutils.MustInsertTweet(t, tx, author.ID, "once only")
		likeStore := postgres.NewPostgresLikeStore(tx, nil)

		like, err := domain.NewLike(tweet.ID, fan.ID, time.Now().UTC())
		require.NoError(t, err)

		_, err = likeStore.Create(ctx, like)
		require.NoError(t, err)

		_, err = likeStore.Create(ctx, like)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrLikeExists)
	})
}

func TestPostgresLikeStoreDeleteMissing(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		likeStore := postgres.NewPostgresLikeStore(tx, nil)

		err := likeStore.Delete(ctx, 999999999, 999999999)
		assert.ErrorIs(t, err, store.ErrLikeNotFound)
	})
}

func TestPostgresFollowStoreLifecycle(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		follower := testutils.MustInsertUser(t, tx, "follower")
		followee := testutils.MustInsertUser(t, tx, "followee")
		followStore := postgres.NewPostgresFollowStore(tx, nil)

		follow, err := domain.NewFollow(follower.ID, followee.ID, time.Now().UTC())
		require.NoError(t, err)

		_, err = followStore.Create(ctx, follow)
		require.NoError(t, err)

		_, err = followStore.Create(ctx, follow)
		assert.ErrorIs(t, err, store.ErrFollowExists)

		followers, err := followStore.ListFollowers(ctx, followee.ID)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, follower.ID, followers[0].FollowerID)

		followees, err := followStore.ListFollowees(ctx, follower.ID)
		require.NoError(t, err)
		require.Len(t, followees, 1)
		assert.Equal(t, followee.ID, followees[0].FolloweeID)

		require.NoError(t, followStore.Delete(ctx, follower.ID, followee.ID))
		_, err = followStore.GetByPair(ctx, follower.ID, followee.ID)
		assert.ErrorIs(t, err, store.ErrFollowNotFound)
	})
}

func TestPostgresFollowStoreSelfFollowRejectedBySchema(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		user := testutils.MustInsertUser(t, tx, "narcissist")
		followStore := postgres.NewPostgresFollowStore(tx, nil)

		// The constructor rejects self-follows, so go through a raw value
		// to exercise the database check constraint.
		follow := domain.Follow{
			FollowerID: user.ID,
			FolloweeID: user.ID,
			CreatedAt:  time.Now().UTC(),
		}

		_, err := followStore.Create(ctx, follow)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresBlockStoreLifecycle(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDBWithT(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		blocker := testutils.MustInsertUser(t, tx, "blocker")
		blocked := testutils.MustInsertUser(t, tx, "blocked")
		blockStore := postgres.NewPostgresBlockStore(tx, nil)

		block, err := domain.NewBlock(blocker.ID, blocked.ID, time.Now().UTC())
		require.NoError(t, err)

		_, err = blockStore.Create(ctx, block)
		require.NoError(t, err)

		_, err = blockStore.Create(ctx, block)
		assert.ErrorIs(t, err, store.ErrBlockExists)

		blocks, err := blockStore.ListByBlocker(ctx, blocker.ID)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, blocked.ID, blocks[0].BlockedID)

		require.NoError(t, blockStore.Delete(ctx, blocker.ID, blocked.ID))
		_, err = blockStore.GetByPair(ctx, blocker.ID, blocked.ID)
		assert.ErrorIs(t, err, store.ErrBlockNotFound)
	})
}
