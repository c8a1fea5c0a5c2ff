package services

import (
	"context"
	"errors"
	"html/template"

	"soundthread/internal/cascade"
	"soundthread/internal/listing"
	"soundthread/internal/metrics"
	"soundthread/internal/models"
	"soundthread/internal/store"
	"soundthread/internal/utils"
	"soundthread/internal/validation"
)

// Forum orchestrates posts, comments, replies and likes.
type Forum struct {
	store   *store.Store
	cascade *cascade.Engine
}

func NewForum(s *store.Store) *Forum {
	return &Forum{store: s, cascade: cascade.New(s)}
}

type CreatedPost struct {
	PostID int64 `json:"postId"`
}

type CreatedComment struct {
	CommentID int64  `json:"commentId"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
}

type CreatedReply struct {
	ReplyID  int64  `json:"replyId"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

type LikeState struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

// PostView is a post as shown on its own page.
type PostView struct {
	models.PostDetail
	Tags            map[string]bool `json:"tags"`
	Liked           bool            `json:"liked"`
	DescriptionHTML template.HTML   `json:"descriptionHtml"`
}

// Done is the value of use cases that produce nothing.
type Done struct{}

func (f *Forum) ListPosts(ctx context.Context, q listing.Query) ([]models.PostHighlight, error) {
	out, err := f.store.ListPosts(ctx, q)
	if err != nil {
		return nil, failed("list posts", err)
	}
	return out, nil
}

// PostsByUser returns ErrNotFound when the user does not exist.
func (f *Forum) PostsByUser(ctx context.Context, userID int64, limit int) ([]models.PostHighlight, error) {
	if _, err := f.store.UserByID(ctx, userID); err != nil {
		return nil, failed("posts by user", err)
	}
	out, err := f.store.PostsByUser(ctx, userID, limit)
	if err != nil {
		return nil, failed("posts by user", err)
	}
	return out, nil
}

func (f *Forum) CreatePost(ctx context.Context, callerID int64, in validation.PostInput) (Outcome[CreatedPost], error) {
	const useCase = "create post"
	if v := validation.PostCreate(in, callerID); !v.Empty() {
		return rejected[CreatedPost](useCase, v), nil
	}

	post := &models.Post{
		UserID:      callerID,
		Title:       in.Title,
		Description: in.Description,
		Audio:       in.Audio,
		AudioSize:   in.AudioSize,
	}
	if err := f.store.CreatePost(ctx, post, models.TagsFromMap(0, in.Tags)); err != nil {
		return Outcome[CreatedPost]{}, failed(useCase, err)
	}

	utils.LogSuccessWithUser(callerID, "post created")
	return accepted(CreatedPost{PostID: post.ID}), nil
}

// PostDetail loads a post for display. A post missing its tag-set gets an
// all-false one on first read.
func (f *Forum) PostDetail(ctx context.Context, postID, callerID int64) (*PostView, error) {
	const useCase = "post detail"
	detail, err := f.store.PostDetail(ctx, postID)
	if err != nil {
		return nil, failed(useCase, err)
	}
	tags, err := f.store.GetOrCreateTags(ctx, postID)
	if err != nil {
		return nil, failed(useCase, err)
	}

	view := &PostView{
		PostDetail:      *detail,
		Tags:            tags.Map(),
		DescriptionHTML: utils.EnhanceHTMLContent(utils.RenderMarkdown(detail.Description)),
	}
	if callerID > 0 {
		if view.Liked, err = f.store.HasLike(ctx, postID, callerID); err != nil {
			return nil, failed(useCase, err)
		}
	}
	return view, nil
}

func (f *Forum) UpdatePostDescription(ctx context.Context, callerID, postID int64, text string) (Outcome[Done], error) {
	const useCase = "update post"
	post, err := optional(f.store.PostByID(ctx, postID))
	if err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	if v := validation.PostUpdateAuthorization(post, callerID); !v.Empty() {
		return rejected[Done](useCase, v), nil
	}
	if v := validation.PostDescriptionUpdate(text); !v.Empty() {
		return rejected[Done](useCase, v), nil
	}

	if err := f.store.UpdatePostDescription(ctx, postID, text); err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	return accepted(Done{}), nil
}

// AuthorizeDeletion checks that the caller may delete the target without
// deleting anything.
func (f *Forum) AuthorizeDeletion(ctx context.Context, callerID int64, target validation.Target, id int64) (Outcome[Done], error) {
	useCase := "delete " + string(target)
	found, owner, err := f.owner(ctx, target, id)
	if err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	if v := validation.Deletion(target, found, owner, callerID); !v.Empty() {
		return rejected[Done](useCase, v), nil
	}
	return accepted(Done{}), nil
}

func (f *Forum) owner(ctx context.Context, target validation.Target, id int64) (bool, int64, error) {
	var (
		owner int64
		err   error
	)
	switch target {
	case validation.TargetPost:
		var post *models.Post
		if post, err = f.store.PostByID(ctx, id); err == nil {
			owner = post.UserID
		}
	case validation.TargetComment:
		var comment *models.Comment
		if comment, err = f.store.CommentByID(ctx, id); err == nil {
			owner = comment.UserID
		}
	case validation.TargetReply:
		var reply *models.Reply
		if reply, err = f.store.ReplyByID(ctx, id); err == nil {
			owner = reply.UserID
		}
	default:
		return false, 0, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return false, 0, nil
	}
	return err == nil, owner, err
}

func (f *Forum) DeletePost(ctx context.Context, callerID, postID int64) (Outcome[Done], error) {
	const useCase = "delete post"
	if out, err := f.AuthorizeDeletion(ctx, callerID, validation.TargetPost, postID); err != nil || !out.OK() {
		return out, err
	}

	if err := f.cascade.DeletePost(ctx, postID); err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	metrics.Deletions.WithLabelValues(string(validation.TargetPost)).Inc()
	utils.LogSuccessWithUser(callerID, "post deleted")
	return accepted(Done{}), nil
}

// Comments returns ErrNotFound when the post does not exist.
func (f *Forum) Comments(ctx context.Context, postID int64) ([]models.CommentView, error) {
	exists, err := f.store.PostExists(ctx, postID)
	if err != nil {
		return nil, failed("comments", err)
	}
	if !exists {
		return nil, store.ErrNotFound
	}
	out, err := f.store.CommentsByPost(ctx, postID)
	if err != nil {
		return nil, failed("comments", err)
	}
	return out, nil
}

func (f *Forum) CreateComment(ctx context.Context, callerID, postID int64, text string) (Outcome[CreatedComment], error) {
	const useCase = "create comment"
	if v := validation.SignIn(callerID); !v.Empty() {
		return rejected[CreatedComment](useCase, v), nil
	}
	v, err := validation.CommentCreate(ctx, f.store, postID, text)
	if err != nil {
		return Outcome[CreatedComment]{}, failed(useCase, err)
	}
	if !v.Empty() {
		return rejected[CreatedComment](useCase, v), nil
	}

	author, err := f.store.UserByID(ctx, callerID)
	if err != nil {
		return Outcome[CreatedComment]{}, failed(useCase, err)
	}
	comment := &models.Comment{PostID: postID, UserID: callerID, Text: text}
	if err := f.store.CreateComment(ctx, comment); err != nil {
		return Outcome[CreatedComment]{}, failed(useCase, err)
	}
	return accepted(CreatedComment{CommentID: comment.ID, UserID: callerID, Username: author.Username}), nil
}

func (f *Forum) UpdateComment(ctx context.Context, callerID, commentID int64, text string) (Outcome[Done], error) {
	const useCase = "update comment"
	comment, err := optional(f.store.CommentByID(ctx, commentID))
	if err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	if v := validation.CommentUpdate(comment, callerID, text); !v.Empty() {
		return rejected[Done](useCase, v), nil
	}
	if err := f.store.UpdateCommentText(ctx, commentID, text); err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	return accepted(Done{}), nil
}

func (f *Forum) DeleteComment(ctx context.Context, callerID, commentID int64) (Outcome[Done], error) {
	const useCase = "delete comment"
	if out, err := f.AuthorizeDeletion(ctx, callerID, validation.TargetComment, commentID); err != nil || !out.OK() {
		return out, err
	}

	if err := f.cascade.DeleteComment(ctx, commentID); err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	metrics.Deletions.WithLabelValues(string(validation.TargetComment)).Inc()
	return accepted(Done{}), nil
}

// Replies returns the comment's chain with parents resolved, or ErrNotFound
// when the comment does not exist.
func (f *Forum) Replies(ctx context.Context, commentID int64) ([]cascade.Entry, error) {
	if _, err := f.store.CommentByID(ctx, commentID); err != nil {
		return nil, failed("replies", err)
	}
	chain, err := f.store.RepliesByComment(ctx, commentID)
	if err != nil {
		return nil, failed("replies", err)
	}
	return cascade.Thread(chain), nil
}

type ReplyRequest struct {
	CommentID int64
	PostID    int64
	ParentID  *int64
	Text      string
}

func (f *Forum) CreateReply(ctx context.Context, callerID int64, req ReplyRequest) (Outcome[CreatedReply], error) {
	const useCase = "create reply"
	if v := validation.SignIn(callerID); !v.Empty() {
		return rejected[CreatedReply](useCase, v), nil
	}

	comment, err := optional(f.store.CommentByID(ctx, req.CommentID))
	if err != nil {
		return Outcome[CreatedReply]{}, failed(useCase, err)
	}
	var parent *models.Reply
	if req.ParentID != nil {
		if parent, err = optional(f.store.ReplyByID(ctx, *req.ParentID)); err != nil {
			return Outcome[CreatedReply]{}, failed(useCase, err)
		}
	}
	v := validation.ReplyCreate(validation.ReplyInput{
		Comment:  comment,
		ParentID: req.ParentID,
		Parent:   parent,
		PostID:   req.PostID,
		Text:     req.Text,
	})
	if !v.Empty() {
		return rejected[CreatedReply](useCase, v), nil
	}

	author, err := f.store.UserByID(ctx, callerID)
	if err != nil {
		return Outcome[CreatedReply]{}, failed(useCase, err)
	}
	reply := &models.Reply{
		CommentID: comment.ID,
		ReplyID:   req.ParentID,
		PostID:    comment.PostID,
		UserID:    callerID,
		Text:      req.Text,
	}
	if err := f.store.CreateReply(ctx, reply); err != nil {
		return Outcome[CreatedReply]{}, failed(useCase, err)
	}
	return accepted(CreatedReply{ReplyID: reply.ID, UserID: callerID, Username: author.Username}), nil
}

func (f *Forum) UpdateReply(ctx context.Context, callerID, replyID, postID int64, text string) (Outcome[Done], error) {
	const useCase = "update reply"
	reply, err := optional(f.store.ReplyByID(ctx, replyID))
	if err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	if v := validation.ReplyUpdate(reply, callerID, postID, text); !v.Empty() {
		return rejected[Done](useCase, v), nil
	}
	if err := f.store.UpdateReplyText(ctx, replyID, text); err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	return accepted(Done{}), nil
}

func (f *Forum) DeleteReply(ctx context.Context, callerID, replyID int64) (Outcome[Done], error) {
	const useCase = "delete reply"
	if out, err := f.AuthorizeDeletion(ctx, callerID, validation.TargetReply, replyID); err != nil || !out.OK() {
		return out, err
	}

	if err := f.cascade.DeleteReply(ctx, replyID); err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	metrics.Deletions.WithLabelValues(string(validation.TargetReply)).Inc()
	return accepted(Done{}), nil
}

// ToggleLike flips the caller's like on the post.
func (f *Forum) ToggleLike(ctx context.Context, callerID, postID int64) (Outcome[LikeState], error) {
	return f.setLike(ctx, "toggle like", callerID, postID, nil)
}

// Like is idempotent.
func (f *Forum) Like(ctx context.Context, callerID, postID int64) (Outcome[LikeState], error) {
	want := true
	return f.setLike(ctx, "like", callerID, postID, &want)
}

// Unlike is idempotent.
func (f *Forum) Unlike(ctx context.Context, callerID, postID int64) (Outcome[LikeState], error) {
	want := false
	return f.setLike(ctx, "unlike", callerID, postID, &want)
}

// setLike sets the like to want, or flips it when want is nil.
func (f *Forum) setLike(ctx context.Context, useCase string, callerID, postID int64, want *bool) (Outcome[LikeState], error) {
	if v := validation.SignIn(callerID); !v.Empty() {
		return rejected[LikeState](useCase, v), nil
	}
	exists, err := f.store.PostExists(ctx, postID)
	if err != nil {
		return Outcome[LikeState]{}, failed(useCase, err)
	}
	if v := validation.PostFound(exists); !v.Empty() {
		return rejected[LikeState](useCase, v), nil
	}

	liked := false
	if want != nil {
		liked = *want
	} else {
		has, err := f.store.HasLike(ctx, postID, callerID)
		if err != nil {
			return Outcome[LikeState]{}, failed(useCase, err)
		}
		liked = !has
	}

	if liked {
		err = f.store.CreateLike(ctx, postID, callerID)
	} else {
		err = f.store.DeleteLike(ctx, postID, callerID)
	}
	if err != nil {
		return Outcome[LikeState]{}, failed(useCase, err)
	}

	count, err := f.store.CountLikes(ctx, postID)
	if err != nil {
		return Outcome[LikeState]{}, failed(useCase, err)
	}
	return accepted(LikeState{Liked: liked, Likes: count}), nil
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
