package models

import (
	"strings"
)

// TagNames lists the genre flags in column order. The set is closed.
var TagNames = []string{"pop", "rock", "hiphop", "electronic", "jazz", "classical", "country", "others"}

// MaxSelectedTags bounds how many flags a new post may set.
const MaxSelectedTags = 2

// Tags is the genre classification of a post, one row per post.
type Tags struct {
	PostID     int64 `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Pop        bool  `gorm:"not null;default:false" json:"pop"`
	Rock       bool  `gorm:"not null;default:false" json:"rock"`
	HipHop     bool  `gorm:"column:hiphop;not null;default:false" json:"hiphop"`
	Electronic bool  `gorm:"not null;default:false" json:"electronic"`
	Jazz       bool  `gorm:"not null;default:false" json:"jazz"`
	Classical  bool  `gorm:"not null;default:false" json:"classical"`
	Country    bool  `gorm:"not null;default:false" json:"country"`
	Others     bool  `gorm:"not null;default:false" json:"others"`
}

// IsTagName reports whether name is one of TagNames, ignoring case.
func IsTagName(name string) bool {
	name = strings.ToLower(name)
	for _, n := range TagNames {
		if n == name {
			return true
		}
	}
	return false
}

// TagsFromMap builds a tag-set from a flag map keyed by TagNames.
// Keys outside TagNames are ignored.
func TagsFromMap(postID int64, flags map[string]bool) Tags {
	return Tags{
		PostID:     postID,
		Pop:        flags["pop"],
		Rock:       flags["rock"],
		HipHop:     flags["hiphop"],
		Electronic: flags["electronic"],
		Jazz:       flags["jazz"],
		Classical:  flags["classical"],
		Country:    flags["country"],
		Others:     flags["others"],
	}
}

// Map returns the flags keyed by TagNames.
func (t Tags) Map() map[string]bool {
	return map[string]bool{
		"pop":        t.Pop,
		"rock":       t.Rock,
		"hiphop":     t.HipHop,
		"electronic": t.Electronic,
		"jazz":       t.Jazz,
		"classical":  t.Classical,
		"country":    t.Country,
		"others":     t.Others,
	}
}

func (Tags) TableName() string {
	return "tags"
}
