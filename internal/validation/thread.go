package validation

import (
	"context"

	"soundthread/internal/models"
)

const (
	minThreadTextLength = models.MinCommentLength
	maxThreadTextLength = models.MaxCommentLength
)

// PostLookup reports whether a post exists.
type PostLookup interface {
	PostExists(ctx context.Context, id int64) (bool, error)
}

func CommentCreate(ctx context.Context, posts PostLookup, postID int64, text string) (Violations, error) {
	exists, err := posts.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}

	var out Violations
	if !exists {
		out = append(out, notFound(MsgPostNotFound))
	}
	if !lengthWithin(text, minThreadTextLength, maxThreadTextLength) {
		out = append(out, invalid(MsgCommentLength))
	}
	return out, nil
}

// CommentUpdate treats a missing comment the same as someone else's.
func CommentUpdate(comment *models.Comment, sessionUserID int64, text string) Violations {
	if comment == nil || comment.UserID != sessionUserID {
		return only(forbidden(MsgOriginalCommenter))
	}
	if !lengthWithin(text, minThreadTextLength, maxThreadTextLength) {
		return only(invalid(MsgCommentLength))
	}
	return nil
}

type ReplyInput struct {
	Comment *models.Comment
	// ParentID is the reply being answered; nil replies to the comment.
	ParentID *int64
	Parent   *models.Reply
	PostID   int64
	Text     string
}

func ReplyCreate(in ReplyInput) Violations {
	if in.Comment == nil {
		return only(notFound(MsgCommentNotFound))
	}

	var out Violations
	if in.Comment.PostID != in.PostID {
		out = append(out, invalid(MsgReplyPostMismatch))
	}
	if in.ParentID != nil && (in.Parent == nil || in.Parent.CommentID != in.Comment.ID) {
		out = append(out, invalid(MsgParentReplyMismatch))
	}
	if !lengthWithin(in.Text, minThreadTextLength, maxThreadTextLength) {
		out = append(out, invalid(MsgReplyLength))
	}
	return out
}

// ReplyUpdate accumulates every failure; the post id is the one the caller
// claims the reply lives under.
func ReplyUpdate(reply *models.Reply, sessionUserID, postID int64, text string) Violations {
	if reply == nil {
		return only(notFound(MsgReplyNotFound))
	}

	var out Violations
	if reply.UserID != sessionUserID {
		out = append(out, forbidden(MsgOriginalReplier))
	}
	if reply.PostID != postID {
		out = append(out, invalid(MsgReplyPostMismatch))
	}
	if !lengthWithin(text, minThreadTextLength, maxThreadTextLength) {
		out = append(out, invalid(MsgReplyLength))
	}
	return out
}

// PostFound guards use cases that only need the post to exist.
func PostFound(exists bool) Violations {
	if !exists {
		return only(notFound(MsgPostNotFound))
	}
	return nil
}
