package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundthread/internal/listing"
	"soundthread/internal/models"
	"soundthread/internal/testutils"
)

func newStore(t *testing.T) *Store {
	return New(testutils.SetupTestDB(t))
}

func seedUser(t *testing.T, s *Store, name string) *models.User {
	t.Helper()
	user := &models.User{Username: name, Email: name + "@example.com", Password: "hash"}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func seedPost(t *testing.T, s *Store, userID int64, title string, tags map[string]bool) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Title: title, Description: "a description", Audio: "blob", AudioSize: 10}
	require.NoError(t, s.CreatePost(context.Background(), post, models.TagsFromMap(0, tags)))
	return post
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := seedUser(t, s, "alice")

	got, err := s.UserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	taken, err := s.UsernameTaken(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = s.EmailTaken(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = s.UserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.MarkVerified(ctx, alice.ID))
	require.NoError(t, s.UpdateProfileField(ctx, alice.ID, "bio", "drummer"))
	got, err = s.UserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)
	assert.Equal(t, "drummer", got.Bio)

	assert.Error(t, s.UpdateProfileField(ctx, alice.ID, "password", "x"))
	assert.ErrorIs(t, s.MarkVerified(ctx, 999), ErrNotFound)
}

func TestVerificationTokens(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := seedUser(t, s, "alice")

	require.NoError(t, s.SaveVerificationToken(ctx, alice.ID, "first", time.Now()))
	require.NoError(t, s.SaveVerificationToken(ctx, alice.ID, "second", time.Now()))

	_, err := s.VerificationTokenByValue(ctx, "first")
	assert.ErrorIs(t, err, ErrNotFound)

	row, err := s.VerificationTokenByValue(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, row.UserID)

	require.NoError(t, s.DeleteVerificationToken(ctx, alice.ID))
	_, err = s.VerificationTokenByValue(ctx, "second")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostsAndTags(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := seedUser(t, s, "alice")
	post := seedPost(t, s, alice.ID, "First Song", map[string]bool{"jazz": true})

	tags, err := s.TagsByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, tags.Jazz)
	assert.False(t, tags.Pop)

	exists, err := s.PostExists(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.CreateLike(ctx, post.ID, alice.ID))
	detail, err := s.PostDetail(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Username)
	assert.Equal(t, int64(1), detail.Likes)

	require.NoError(t, s.UpdatePostDescription(ctx, post.ID, "a better description"))
	reloaded, err := s.PostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "a better description", reloaded.Description)

	mine, err := s.PostsByUser(ctx, alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "First Song", mine[0].Title)

	_, err = s.PostDetail(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrCreateTags_InsertsBlankRow(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := seedUser(t, s, "alice")
	post := seedPost(t, s, alice.ID, "First Song", nil)
	require.NoError(t, s.DeleteTagsByPost(ctx, post.ID))

	tags, err := s.GetOrCreateTags(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, tags.PostID)
	assert.Equal(t, models.Tags{PostID: post.ID}, *tags)

	again, err := s.GetOrCreateTags(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, tags, again)
}

func TestLikesAreIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := seedUser(t, s, "alice")
	post := seedPost(t, s, alice.ID, "First Song", nil)

	require.NoError(t, s.CreateLike(ctx, post.ID, alice.ID))
	require.NoError(t, s.CreateLike(ctx, post.ID, alice.ID))
	count, err := s.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, s.DeleteLike(ctx, post.ID, alice.ID))
	require.NoError(t, s.DeleteLike(ctx, post.ID, alice.ID))
	liked, err := s.HasLike(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestCommentsAndReplies(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	post := seedPost(t, s, alice.ID, "First Song", nil)

	comment := &models.Comment{PostID: post.ID, UserID: bob.ID, Text: "great mix"}
	require.NoError(t, s.CreateComment(ctx, comment))

	first := &models.Reply{CommentID: comment.ID, PostID: post.ID, UserID: alice.ID, Text: "thanks!"}
	require.NoError(t, s.CreateReply(ctx, first))
	second := &models.Reply{CommentID: comment.ID, ReplyID: &first.ID, PostID: post.ID, UserID: bob.ID, Text: "any time"}
	require.NoError(t, s.CreateReply(ctx, second))

	comments, err := s.CommentsByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "bob", comments[0].Username)

	require.NoError(t, s.UpdateReplyText(ctx, second.ID, "any time at all"))
	chain, err := s.RepliesByComment(ctx, comment.ID)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "alice", chain[0].Username)
	assert.Equal(t, "any time at all", chain[1].Text)
	require.NotNil(t, chain[1].ReplyID)
	assert.Equal(t, first.ID, *chain[1].ReplyID)

	assert.ErrorIs(t, s.UpdateCommentText(ctx, 999, "nope"), ErrNotFound)
	assert.ErrorIs(t, s.DeleteReplyRow(ctx, 999), ErrNotFound)
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := seedUser(t, s, "alice")
	seedPost(t, s, alice.ID, "Jazz Night", map[string]bool{"jazz": true})
	seedPost(t, s, alice.ID, "Rock Night", map[string]bool{"rock": true})

	out, err := s.ListPosts(ctx, listing.Query{Limit: 10, Tags: []string{"jazz"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Jazz Night", out[0].Title)
	assert.Equal(t, "alice", out[0].Username)
}

func TestTransaction_RollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := seedUser(t, s, "alice")
	post := seedPost(t, s, alice.ID, "First Song", nil)
	boom := errors.New("boom")

	err := s.Transaction(ctx, func(tx *Store) error {
		require.NoError(t, tx.DeletePostRow(ctx, post.ID))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := s.PostExists(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFaults_MockedDriver(t *testing.T) {
	ctx := context.Background()
	conn, mock := testutils.SetupMockDB(t)
	s := New(conn)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).WillReturnError(errors.New("connection reset"))
	_, err := s.PostByID(ctx, 1)
	assert.ErrorIs(t, err, ErrStoreFault)
	assert.NotErrorIs(t, err, ErrNotFound)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = s.PostByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).WillReturnError(errors.New("timeout"))
	_, err = s.EmailTaken(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrStoreFault)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "comments"`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()
	err = s.UpdateCommentText(ctx, 1, "new text")
	assert.ErrorIs(t, err, ErrStoreFault)

	assert.NoError(t, mock.ExpectationsWereMet())
}
