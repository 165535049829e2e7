// Package nav mirrors the displayed record into a location carrying a single
// `id` query parameter, with browser-style push/replace/back/forward history.
package nav

import (
	"fmt"
	"net/url"
)

// Param is the query parameter holding the current record id.
const Param = "id"

// History is the navigation surface the card loader mutates.
type History interface {
	Location() *url.URL
	Push(u *url.URL)
	Replace(u *url.URL)
}

// IDFrom returns the record id carried by u, if any.
func IDFrom(u *url.URL) (string, bool) {
	if u == nil {
		return "", false
	}
	id := u.Query().Get(Param)
	return id, id != ""
}

// WithID returns path?id=<id> for u's path. Other query parameters are dropped.
func WithID(u *url.URL, id string) *url.URL {
	out := &url.URL{Path: "/"}
	if u != nil && u.Path != "" {
		out.Path = u.Path
	}
	out.RawQuery = url.Values{Param: []string{id}}.Encode()
	return out
}

// Stack is an in-memory history. The zero value is not usable; call NewStack.
type Stack struct {
	entries []*url.URL
	index   int
}

// NewStack starts a history at location, e.g. "/" or "/?id=42".
func NewStack(location string) (*Stack, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse location: %w", err)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return &Stack{entries: []*url.URL{u}}, nil
}

func (s *Stack) Location() *url.URL {
	c := *s.entries[s.index]
	return &c
}

// Push appends u after the current entry, discarding any forward entries.
func (s *Stack) Push(u *url.URL) {
	c := *u
	s.entries = append(s.entries[:s.index+1], &c)
	s.index++
}

// Replace rewrites the current entry in place.
func (s *Stack) Replace(u *url.URL) {
	c := *u
	s.entries[s.index] = &c
}

// Back moves one entry back. It reports whether a popstate occurred.
func (s *Stack) Back() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Forward moves one entry forward. It reports whether a popstate occurred.
func (s *Stack) Forward() bool {
	if s.index >= len(s.entries)-1 {
		return false
	}
	s.index++
	return true
}

// Len is the number of entries.
func (s *Stack) Len() int { return len(s.entries) }

// Index is the position of the current entry.
func (s *Stack) Index() int { return s.index }
