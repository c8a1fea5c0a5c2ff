package validation

import (
	"github.com/samber/lo"

	"soundthread/internal/models"
)

const (
	minTitleLength       = 5
	maxTitleLength       = 60
	minDescriptionLength = 5
	maxDescriptionLength = 800
)

type PostInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Audio       string          `json:"audio"`
	AudioSize   int64           `json:"audioSize"`
	Tags        map[string]bool `json:"tags"`
}

// PostCreate checks a new post. Being signed in and having every field set
// are blocking; the remaining checks accumulate.
func PostCreate(in PostInput, callerID int64) Violations {
	if callerID <= 0 {
		return only(unauthorized(MsgSignInToPost))
	}
	if in.Title == "" || in.Description == "" || in.Audio == "" || in.AudioSize == 0 {
		return only(invalid(MsgAllFieldsRequired))
	}

	var out Violations
	if !lengthWithin(in.Title, minTitleLength, maxTitleLength) {
		out = append(out, invalid(MsgTitleLength))
	}
	if !lengthWithin(in.Description, minDescriptionLength, maxDescriptionLength) {
		out = append(out, invalid(MsgDescriptionLength))
	}
	if in.AudioSize > models.MaxAudioSize {
		out = append(out, invalid(MsgAudioTooLarge))
	}
	if !hasExactTagKeys(in.Tags) {
		out = append(out, invalid(MsgTagKeys))
	}
	if lo.CountBy(lo.Values(in.Tags), func(on bool) bool { return on }) > models.MaxSelectedTags {
		out = append(out, invalid(MsgTooManyTags))
	}
	return out
}

func hasExactTagKeys(tags map[string]bool) bool {
	return len(tags) == len(models.TagNames) && lo.Every(models.TagNames, lo.Keys(tags))
}

// PostUpdateAuthorization gates edits of a post. post is nil when it does
// not exist.
func PostUpdateAuthorization(post *models.Post, callerID int64) Violations {
	if post == nil {
		return only(notFound(MsgPostNotFoundToEdit))
	}
	if post.UserID != callerID {
		return only(forbidden(MsgOriginalPoster))
	}
	return nil
}

func PostDescriptionUpdate(text string) Violations {
	if !lengthWithin(text, minDescriptionLength, maxDescriptionLength) {
		return only(invalid(MsgDescriptionLength))
	}
	return nil
}
