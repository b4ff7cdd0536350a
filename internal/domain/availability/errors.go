package availability

import "consult-booking/internal/pkg/errs"

// All engine argument errors carry the errs.ErrInvalidArgument mark.
var (
	ErrInvalidDuration  = errs.Mark(errs.New("duration is not an allowed appointment length"), errs.ErrInvalidArgument)
	ErrInvalidTime      = errs.Mark(errs.New("start time is not a valid slot time"), errs.ErrInvalidArgument)
	ErrInvalidDate      = errs.Mark(errs.New("date is required"), errs.ErrInvalidArgument)
	ErrInvalidCount     = errs.Mark(errs.New("count must be positive"), errs.ErrInvalidArgument)
	ErrInvalidOccupancy = errs.Mark(errs.New("existing appointment has a non-positive duration"), errs.ErrInvalidArgument)
	ErrInvalidSchedule  = errs.Mark(errs.New("schedule is inconsistent"), errs.ErrInvalidArgument)
)
