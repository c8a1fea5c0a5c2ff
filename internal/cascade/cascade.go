// Package cascade removes posts, comments and replies together with the rows
// that depend on them, and resolves reply chains for reading.
package cascade

import (
	"context"

	"soundthread/internal/models"
	"soundthread/internal/store"
)

type Engine struct {
	store *store.Store
}

func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// DeletePost removes the post and every comment, like, tag-set and reply
// attached to it. The cascade is atomic.
func (e *Engine) DeletePost(ctx context.Context, id int64) error {
	return e.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.DeletePostRow(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteCommentsByPost(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteLikesByPost(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteTagsByPost(ctx, id); err != nil {
			return err
		}
		return tx.DeleteRepliesByPost(ctx, id)
	})
}

// DeleteComment removes the comment and its whole reply chain.
func (e *Engine) DeleteComment(ctx context.Context, id int64) error {
	return e.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.DeleteCommentRow(ctx, id); err != nil {
			return err
		}
		return tx.DeleteRepliesByComment(ctx, id)
	})
}

// DeleteReply removes a single reply. Replies that answered it are left in
// place with their parent pointer unchanged; Thread handles them on read.
func (e *Engine) DeleteReply(ctx context.Context, id int64) error {
	return e.store.DeleteReplyRow(ctx, id)
}

// Entry is a reply as shown in a thread.
type Entry struct {
	models.ReplyView
	// ReplyingTo is the answered reply, nil when the reply answers the
	// comment or its parent no longer exists.
	ReplyingTo *int64 `json:"replying_to"`
}

// Thread resolves the parent pointers of one comment's chain. Stored rows
// are not modified.
func Thread(replies []models.ReplyView) []Entry {
	present := make(map[int64]bool, len(replies))
	for _, r := range replies {
		present[r.ID] = true
	}

	out := make([]Entry, len(replies))
	for i, r := range replies {
		out[i] = Entry{ReplyView: r}
		if r.ReplyID != nil && present[*r.ReplyID] {
			parent := *r.ReplyID
			out[i].ReplyingTo = &parent
		}
	}
	return out
}
