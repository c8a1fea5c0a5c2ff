// Package validation holds one validator per mutating use case. Each returns
// an ordered list of violations; order is part of the contract.
package validation

import (
	"unicode/utf8"
)

// Kind classifies a violation so transports can pick a status code.
type Kind int

const (
	KindInvalid Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
)

type Violation struct {
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
}

type Violations []Violation

func (v Violations) Empty() bool {
	return len(v) == 0
}

func (v Violations) Messages() []string {
	out := make([]string, len(v))
	for i, violation := range v {
		out[i] = violation.Message
	}
	return out
}

// Kind is the kind of the first violation, which decides the response.
func (v Violations) Kind() Kind {
	if len(v) == 0 {
		return KindInvalid
	}
	return v[0].Kind
}

func invalid(msg string) Violation      { return Violation{Message: msg, Kind: KindInvalid} }
func unauthorized(msg string) Violation { return Violation{Message: msg, Kind: KindUnauthorized} }
func forbidden(msg string) Violation    { return Violation{Message: msg, Kind: KindForbidden} }
func notFound(msg string) Violation     { return Violation{Message: msg, Kind: KindNotFound} }

func only(v Violation) Violations {
	return Violations{v}
}

func lengthWithin(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
