package validation

// Target names what a deletion removes.
type Target string

const (
	TargetPost    Target = "post"
	TargetComment Target = "comment"
	TargetReply   Target = "reply"
)

var deletionMessages = map[Target]struct{ missing, owner string }{
	TargetPost:    {MsgPostNotFound, MsgOriginalPoster},
	TargetComment: {MsgCommentNotFound, MsgOriginalCommenter},
	TargetReply:   {MsgReplyNotFound, MsgOriginalReplier},
}

// Deletion authorizes removing a post, comment or reply. Every failure is
// blocking.
func Deletion(target Target, found bool, ownerID, callerID int64) Violations {
	if callerID <= 0 {
		return only(unauthorized(MsgSignInRequired))
	}
	msgs := deletionMessages[target]
	if !found {
		return only(notFound(msgs.missing))
	}
	if ownerID != callerID {
		return only(forbidden(msgs.owner))
	}
	return nil
}
