package validation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundthread/internal/models"
)

type fakeUsers struct {
	usernames map[string]bool
	emails    map[string]bool
	err       error
}

func (f fakeUsers) UsernameTaken(_ context.Context, username string) (bool, error) {
	return f.usernames[username], f.err
}

func (f fakeUsers) EmailTaken(_ context.Context, email string) (bool, error) {
	return f.emails[email], f.err
}

type fakePosts map[int64]bool

func (f fakePosts) PostExists(_ context.Context, id int64) (bool, error) {
	return f[id], nil
}

func validRegistration() RegistrationInput {
	return RegistrationInput{
		Username:     "alice",
		Email:        "alice@example.com",
		Password:     "hunter22!",
		Confirmation: "hunter22!",
	}
}

func tagMap(selected ...string) map[string]bool {
	out := make(map[string]bool, len(models.TagNames))
	for _, name := range models.TagNames {
		out[name] = false
	}
	for _, name := range selected {
		out[name] = true
	}
	return out
}

func validPost() PostInput {
	return PostInput{
		Title:       "My Song",
		Description: "0123456789",
		Audio:       "data:audio/mpeg;base64,AAAA",
		AudioSize:   500000,
		Tags:        tagMap("pop", "rock"),
	}
}

func TestRegistration_Valid(t *testing.T) {
	got, err := Registration(context.Background(), fakeUsers{}, validRegistration())
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestRegistration_EmptyFieldIsSingleViolation(t *testing.T) {
	in := validRegistration()
	in.Password = ""
	in.Username = strings.Repeat("x", 40)

	got, err := Registration(context.Background(), fakeUsers{}, in)
	require.NoError(t, err)
	assert.Equal(t, []string{MsgAllFieldsRequired}, got.Messages())
}

func TestRegistration_EmailCollisionIsReportedAlone(t *testing.T) {
	users := fakeUsers{
		usernames: map[string]bool{"alice": true},
		emails:    map[string]bool{"alice@example.com": true},
	}
	in := validRegistration()
	in.Confirmation = "something else"

	got, err := Registration(context.Background(), users, in)
	require.NoError(t, err)
	assert.Equal(t, []string{MsgEmailRegistered}, got.Messages())
}

func TestRegistration_UsernameLength(t *testing.T) {
	in := validRegistration()
	in.Username = strings.Repeat("a", 31)

	got, err := Registration(context.Background(), fakeUsers{}, in)
	require.NoError(t, err)
	assert.Equal(t, []string{MsgUsernameLength}, got.Messages())

	in.Username = strings.Repeat("a", 30)
	got, err = Registration(context.Background(), fakeUsers{}, in)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestRegistration_AccumulatesInOrder(t *testing.T) {
	users := fakeUsers{usernames: map[string]bool{"alice": true}}
	in := validRegistration()
	in.Email = "not-an-email"
	in.Password = "short"
	in.Confirmation = "shorter"

	got, err := Registration(context.Background(), users, in)
	require.NoError(t, err)
	assert.Equal(t, []string{
		MsgUsernameTaken,
		MsgEmailInvalid,
		MsgPasswordLength,
		MsgPasswordMismatch,
	}, got.Messages())
}

func TestRegistration_LookupErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	_, err := Registration(context.Background(), fakeUsers{err: boom}, validRegistration())
	assert.ErrorIs(t, err, boom)
}

func TestPostCreate_Valid(t *testing.T) {
	assert.True(t, PostCreate(validPost(), 7).Empty())
}

func TestPostCreate_TooManyTags(t *testing.T) {
	in := validPost()
	in.Tags = tagMap("pop", "rock", "jazz")

	assert.Equal(t, []string{MsgTooManyTags}, PostCreate(in, 7).Messages())
}

func TestPostCreate_Blocking(t *testing.T) {
	got := PostCreate(validPost(), 0)
	assert.Equal(t, []string{MsgSignInToPost}, got.Messages())
	assert.Equal(t, KindUnauthorized, got.Kind())

	in := validPost()
	in.Title = ""
	in.AudioSize = 5 << 20
	assert.Equal(t, []string{MsgAllFieldsRequired}, PostCreate(in, 7).Messages())

	in = validPost()
	in.AudioSize = 0
	assert.Equal(t, []string{MsgAllFieldsRequired}, PostCreate(in, 7).Messages())
}

func TestPostCreate_Accumulates(t *testing.T) {
	in := validPost()
	in.Title = "Hey"
	in.Description = strings.Repeat("d", 801)
	in.AudioSize = models.MaxAudioSize + 1
	in.Tags = map[string]bool{"pop": true, "rock": true, "polka": true}

	assert.Equal(t, []string{
		MsgTitleLength,
		MsgDescriptionLength,
		MsgAudioTooLarge,
		MsgTagKeys,
		MsgTooManyTags,
	}, PostCreate(in, 7).Messages())
}

func TestPostCreate_LengthsCountRunes(t *testing.T) {
	in := validPost()
	in.Title = strings.Repeat("é", 60)
	assert.True(t, PostCreate(in, 7).Empty())
}

func TestPostUpdateAuthorization(t *testing.T) {
	post := &models.Post{ID: 3, UserID: 7}

	assert.Equal(t, []string{MsgPostNotFoundToEdit}, PostUpdateAuthorization(nil, 7).Messages())
	assert.Equal(t, KindNotFound, PostUpdateAuthorization(nil, 7).Kind())
	assert.Equal(t, []string{MsgOriginalPoster}, PostUpdateAuthorization(post, 8).Messages())
	assert.True(t, PostUpdateAuthorization(post, 7).Empty())

	assert.Equal(t, []string{MsgDescriptionLength}, PostDescriptionUpdate("abc").Messages())
	assert.True(t, PostDescriptionUpdate("abcde").Empty())
}

func TestCommentCreate(t *testing.T) {
	posts := fakePosts{10: true}

	got, err := CommentCreate(context.Background(), posts, 10, "nice track")
	require.NoError(t, err)
	assert.True(t, got.Empty())

	got, err = CommentCreate(context.Background(), posts, 11, "no")
	require.NoError(t, err)
	assert.Equal(t, []string{MsgPostNotFound, MsgCommentLength}, got.Messages())

	got, err = CommentCreate(context.Background(), posts, 10, strings.Repeat("c", 401))
	require.NoError(t, err)
	assert.Equal(t, []string{MsgCommentLength}, got.Messages())
}

func TestCommentUpdate(t *testing.T) {
	comment := &models.Comment{ID: 1, PostID: 10, UserID: 7}

	assert.Equal(t, []string{MsgOriginalCommenter}, CommentUpdate(nil, 7, "x").Messages())
	assert.Equal(t, []string{MsgOriginalCommenter}, CommentUpdate(comment, 8, "valid text").Messages())
	assert.Equal(t, []string{MsgCommentLength}, CommentUpdate(comment, 7, "abc").Messages())
	assert.True(t, CommentUpdate(comment, 7, "abcd").Empty())
}

func TestReplyCreate(t *testing.T) {
	comment := &models.Comment{ID: 1, PostID: 10, UserID: 7}
	parentID := int64(4)

	assert.Equal(t, []string{MsgCommentNotFound}, ReplyCreate(ReplyInput{PostID: 10, Text: "hello"}).Messages())
	assert.True(t, ReplyCreate(ReplyInput{Comment: comment, PostID: 10, Text: "hello"}).Empty())

	got := ReplyCreate(ReplyInput{
		Comment:  comment,
		ParentID: &parentID,
		Parent:   &models.Reply{ID: 4, CommentID: 2},
		PostID:   11,
		Text:     "hi",
	})
	assert.Equal(t, []string{MsgReplyPostMismatch, MsgParentReplyMismatch, MsgReplyLength}, got.Messages())

	got = ReplyCreate(ReplyInput{Comment: comment, ParentID: &parentID, PostID: 10, Text: "hello"})
	assert.Equal(t, []string{MsgParentReplyMismatch}, got.Messages())
}

func TestReplyUpdate_AccumulatesAllThree(t *testing.T) {
	reply := &models.Reply{ID: 5, CommentID: 1, PostID: 10, UserID: 7}

	got := ReplyUpdate(reply, 8, 11, "x")
	assert.Equal(t, []string{MsgOriginalReplier, MsgReplyPostMismatch, MsgReplyLength}, got.Messages())
	assert.Equal(t, KindForbidden, got.Kind())

	assert.True(t, ReplyUpdate(reply, 7, 10, "fixed it").Empty())
}

func TestProfileUpdate(t *testing.T) {
	user := &models.User{ID: 7}

	assert.Equal(t, []string{MsgProfileNotFound}, ProfileUpdateAuthorization(nil, 7).Messages())
	assert.Equal(t, []string{MsgSignedInAsUser}, ProfileUpdateAuthorization(user, 8).Messages())
	assert.True(t, ProfileUpdateAuthorization(user, 7).Empty())

	assert.True(t, ProfileFieldUpdate("contact", "").Empty())
	assert.True(t, ProfileFieldUpdate("contact", strings.Repeat("c", 50)).Empty())
	assert.Equal(t, []string{MsgContactLength}, ProfileFieldUpdate("contact", strings.Repeat("c", 51)).Messages())
	assert.Equal(t, []string{MsgBioLength}, ProfileFieldUpdate("bio", strings.Repeat("b", 801)).Messages())
	assert.Equal(t, []string{MsgUnknownProfileField}, ProfileFieldUpdate("email", "x").Messages())
}

func TestDeletion(t *testing.T) {
	assert.Equal(t, []string{MsgSignInRequired}, Deletion(TargetPost, true, 7, 0).Messages())
	assert.Equal(t, []string{MsgCommentNotFound}, Deletion(TargetComment, false, 0, 7).Messages())
	assert.Equal(t, []string{MsgOriginalReplier}, Deletion(TargetReply, true, 7, 8).Messages())
	assert.True(t, Deletion(TargetPost, true, 7, 7).Empty())
}

func TestSignIn(t *testing.T) {
	assert.Equal(t, []string{MsgSignInRequired}, SignIn(0).Messages())
	assert.True(t, SignIn(3).Empty())
}

func TestCredentials(t *testing.T) {
	verified := &models.User{ID: 1, Verified: true}

	assert.Equal(t, []string{MsgAllFieldsRequired}, SignInFields("", "pw").Messages())
	assert.Equal(t, []string{MsgInvalidCredentials}, Credentials(nil, false).Messages())
	assert.Equal(t, []string{MsgInvalidCredentials}, Credentials(verified, false).Messages())
	assert.Equal(t, []string{MsgEmailNotVerified}, Credentials(&models.User{ID: 1}, true).Messages())
	assert.True(t, Credentials(verified, true).Empty())
}

func TestVerificationToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fresh := &models.VerificationToken{UserID: 1, Token: "t", SentAt: now.Add(-time.Hour)}
	stale := &models.VerificationToken{UserID: 1, Token: "t", SentAt: now.Add(-48 * time.Hour)}

	assert.True(t, VerificationToken(fresh, now, 24*time.Hour).Empty())
	assert.Equal(t, []string{MsgInvalidToken}, VerificationToken(stale, now, 24*time.Hour).Messages())
	assert.Equal(t, []string{MsgInvalidToken}, VerificationToken(nil, now, 24*time.Hour).Messages())
	assert.Equal(t, []string{MsgPostNotFound}, PostFound(false).Messages())
}
