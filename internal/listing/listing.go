// Package listing assembles the filtered, sorted and limited post listing
// query.
package listing

import (
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"soundthread/internal/models"
)

// SortMode selects the listing order.
type SortMode int

const (
	SortUnspecified SortMode = iota
	SortOldest
	SortNewest
	SortMostLiked
)

// ParseSortMode maps a request token to a SortMode. Unknown tokens map to
// SortUnspecified and never fail.
func ParseSortMode(token string) SortMode {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "asc":
		return SortOldest
	case "desc":
		return SortNewest
	case "likes":
		return SortMostLiked
	default:
		return SortUnspecified
	}
}

func (m SortMode) String() string {
	switch m {
	case SortOldest:
		return "asc"
	case SortNewest:
		return "desc"
	case SortMostLiked:
		return "likes"
	default:
		return ""
	}
}

// Query describes one listing request. Limit is used as given; bounding it is
// up to the caller.
type Query struct {
	Limit int
	Title string
	Sort  SortMode
	Tags  []string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Build returns the query for q on top of db, ready to be scanned into
// []models.PostHighlight.
func Build(db *gorm.DB, q Query) *gorm.DB {
	tx := db.Table("posts").
		Select("posts.id, users.username, posts.title, posts.description").
		Joins("JOIN users ON users.id = posts.user_id").
		Where(`LOWER(posts.title) LIKE LOWER(?) ESCAPE '\'`, "%"+likeEscaper.Replace(q.Title)+"%")

	if len(q.Tags) > 0 {
		tx = tx.Joins("JOIN tags ON tags.post_id = posts.id")
		predicate, args := tagPredicate(q.Tags)
		tx = tx.Where(predicate, args...)
	}

	switch q.Sort {
	case SortOldest:
		tx = tx.Order("posts.created_at ASC")
	case SortNewest:
		tx = tx.Order("posts.created_at DESC")
	case SortMostLiked:
		tx = tx.Joins("LEFT JOIN likes ON likes.post_id = posts.id").
			Group("posts.id, users.username").
			Order("COUNT(likes.user_id) DESC")
	case SortUnspecified:
		// no explicit order
	}

	return tx.Limit(q.Limit)
}

// tagPredicate builds the match-any OR-chain over the requested flags. Names
// outside models.TagNames are dropped; if nothing is left the predicate
// matches no row.
func tagPredicate(names []string) (string, []interface{}) {
	known := lo.Uniq(lo.FilterMap(names, func(name string, _ int) (string, bool) {
		name = strings.ToLower(strings.TrimSpace(name))
		return name, models.IsTagName(name)
	}))
	if len(known) == 0 {
		return "1 = 0", nil
	}

	clauses := make([]string, len(known))
	args := make([]interface{}, len(known))
	for i, name := range known {
		clauses[i] = "tags." + name + " = ?"
		args[i] = true
	}
	return "(" + strings.Join(clauses, " OR ") + ")", args
}
