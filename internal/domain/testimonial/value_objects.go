package testimonial

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxQuoteLength      = 1000
	MaxAuthorNameLength = 120
	MaxAuthorTitleLen   = 160
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Quote struct {
	text string
}

func NewQuote(s string) (Quote, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Quote{}, ErrEmptyQuote
	}
	if utf8.RuneCountInString(t) > MaxQuoteLength {
		return Quote{}, ErrQuoteTooLong
	}
	return Quote{text: t}, nil
}

func (q Quote) String() string { return q.text }

type Author struct {
	name  string
	title string
}

func NewAuthor(name, title string) (Author, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Author{}, ErrEmptyAuthor
	}
	if utf8.RuneCountInString(n) > MaxAuthorNameLength {
		return Author{}, ErrAuthorTooLong
	}
	t := strings.TrimSpace(title)
	if utf8.RuneCountInString(t) > MaxAuthorTitleLen {
		return Author{}, ErrAuthorTooLong
	}
	return Author{name: n, title: t}, nil
}

func (a Author) Name() string  { return a.name }
func (a Author) Title() string { return a.title }

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }
