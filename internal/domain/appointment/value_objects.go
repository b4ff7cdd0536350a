package appointment

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxContactNameLength = 120
	MaxMessageLength     = 2000
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentCanceled PaymentStatus = "canceled"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch ps := PaymentStatus(s); ps {
	case PaymentPending, PaymentPaid, PaymentCanceled:
		return ps, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

func (p PaymentStatus) String() string { return string(p) }

func (p PaymentStatus) IsTerminal() bool {
	return p == PaymentPaid || p == PaymentCanceled
}

type Contact struct {
	name  string
	email string
}

func NewContact(name, email string) (Contact, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Contact{}, ErrEmptyContactName
	}
	if utf8.RuneCountInString(n) > MaxContactNameLength {
		return Contact{}, ErrContactNameTooLong
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return Contact{}, ErrInvalidEmail
	}
	return Contact{name: n, email: strings.ToLower(addr.Address)}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }

type Message struct {
	text string
}

func NewMessage(s string) (Message, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{text: t}, nil
}

func (m Message) String() string { return m.text }
func (m Message) IsEmpty() bool  { return m.text == "" }

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }
