package appointment

import (
	"strings"
	"time"

	"consult-booking/internal/domain/availability"
	"consult-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownServiceType   = errs.Mark(errs.New("unknown service type"), errs.ErrInvalidArgument)
	ErrInvalidPaymentStatus = errs.Mark(errs.New("unknown payment status"), errs.ErrInvalidArgument)
	ErrEmptyContactName     = errs.Mark(errs.New("contact name is required"), errs.ErrInvalidArgument)
	ErrContactNameTooLong   = errs.Mark(errs.New("contact name is too long"), errs.ErrInvalidArgument)
	ErrInvalidEmail         = errs.Mark(errs.New("contact email is invalid"), errs.ErrInvalidArgument)
	ErrMessageTooLong       = errs.Mark(errs.New("message is too long"), errs.ErrInvalidArgument)
	ErrNegativeAmount       = errs.Mark(errs.New("amount cannot be negative"), errs.ErrInvalidArgument)
	ErrMissingStart         = errs.Mark(errs.New("appointment start is required"), errs.ErrInvalidArgument)

	ErrInvalidTransition = errs.Mark(errs.New("payment status transition not allowed"), errs.ErrConflict)
	ErrAlreadySettled    = errs.New("payment status already applied")
)

type Appointment struct {
	id               uuid.UUID
	serviceType      ServiceType
	start            time.Time
	durationMinutes  int
	contact          Contact
	message          Message
	price            Money
	paymentStatus    PaymentStatus
	paymentReference string
	paidAt           *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

type NewParams struct {
	ServiceType     string
	Start           time.Time
	DurationMinutes int
	ContactName     string
	ContactEmail    string
	Message         string
}

// NewAppointment builds a pending appointment. Slot legality against other
// appointments is the availability engine's job and is checked by the caller.
func NewAppointment(p NewParams, schedule availability.Schedule, calc PriceCalculator, now time.Time) (*Appointment, error) {
	service, err := ParseServiceType(p.ServiceType)
	if err != nil {
		return nil, err
	}
	if err := schedule.ValidateDuration(p.DurationMinutes); err != nil {
		return nil, err
	}
	if p.Start.IsZero() {
		return nil, ErrMissingStart
	}
	contact, err := NewContact(p.ContactName, p.ContactEmail)
	if err != nil {
		return nil, err
	}
	message, err := NewMessage(p.Message)
	if err != nil {
		return nil, err
	}
	price, err := calc.CalculatePrice(service, p.DurationMinutes)
	if err != nil {
		return nil, err
	}

	return &Appointment{
		id:               uuid.New(),
		serviceType:      service,
		start:            p.Start,
		durationMinutes:  p.DurationMinutes,
		contact:          contact,
		message:          message,
		price:            price,
		paymentStatus:    PaymentPending,
		paymentReference: NewPaymentReference(),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

type ReconstructParams struct {
	ID               uuid.UUID
	ServiceType      string
	Start            time.Time
	DurationMinutes  int
	ContactName      string
	ContactEmail     string
	Message          string
	PriceCents       int64
	PaymentStatus    string
	PaymentReference string
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Reconstruct rebuilds a stored appointment without re-running creation rules.
func Reconstruct(p ReconstructParams) (*Appointment, error) {
	status, err := ParsePaymentStatus(p.PaymentStatus)
	if err != nil {
		return nil, err
	}
	price, err := NewMoney(p.PriceCents)
	if err != nil {
		return nil, err
	}
	return &Appointment{
		id:               p.ID,
		serviceType:      ServiceType(p.ServiceType),
		start:            p.Start,
		durationMinutes:  p.DurationMinutes,
		contact:          Contact{name: p.ContactName, email: p.ContactEmail},
		message:          Message{text: p.Message},
		price:            price,
		paymentStatus:    status,
		paymentReference: p.PaymentReference,
		paidAt:           p.PaidAt,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func NewPaymentReference() string {
	return "apt_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// MarkPaid moves pending to paid. Repeating it reports ErrAlreadySettled so
// webhook replays can be acknowledged.
func (a *Appointment) MarkPaid(now time.Time) error {
	switch a.paymentStatus {
	case PaymentPending:
		a.paymentStatus = PaymentPaid
		a.paidAt = &now
		a.updatedAt = now
		return nil
	case PaymentPaid:
		return ErrAlreadySettled
	default:
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", a.paymentStatus, PaymentPaid)
	}
}

// Cancel releases the slot of an unpaid appointment.
func (a *Appointment) Cancel(now time.Time) error {
	switch a.paymentStatus {
	case PaymentPending:
		a.paymentStatus = PaymentCanceled
		a.updatedAt = now
		return nil
	case PaymentCanceled:
		return ErrAlreadySettled
	default:
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", a.paymentStatus, PaymentCanceled)
	}
}

func (a *Appointment) Occupancy() availability.Occupancy {
	return availability.Occupancy{Start: a.start, DurationMinutes: a.durationMinutes}
}

func (a *Appointment) End() time.Time {
	return a.start.Add(time.Duration(a.durationMinutes) * time.Minute)
}

func (a *Appointment) ID() uuid.UUID                { return a.id }
func (a *Appointment) ServiceType() ServiceType     { return a.serviceType }
func (a *Appointment) Start() time.Time             { return a.start }
func (a *Appointment) DurationMinutes() int         { return a.durationMinutes }
func (a *Appointment) Contact() Contact             { return a.contact }
func (a *Appointment) Message() Message             { return a.message }
func (a *Appointment) Price() Money                 { return a.price }
func (a *Appointment) PaymentStatus() PaymentStatus { return a.paymentStatus }
func (a *Appointment) PaymentReference() string     { return a.paymentReference }
func (a *Appointment) PaidAt() *time.Time           { return a.paidAt }
func (a *Appointment) CreatedAt() time.Time         { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time         { return a.updatedAt }
