package usecase

import (
	"time"

	"nl-dates/internal/dates"
	"nl-dates/pkg/datemath"
	"nl-dates/pkg/log"
)

// implUseCase is the private implementation of dates.UseCase.
type implUseCase struct {
	l        log.Logger
	defaults *dates.DefaultClient
	calendar *datemath.Calendar
	now      func() time.Time
}

// New creates a new dates UseCase implementation.
// calendar decides which day "today" is; defaults supplies the client when a
// call does not carry one.
func New(l log.Logger, defaults *dates.DefaultClient, calendar *datemath.Calendar) dates.UseCase {
	return &implUseCase{
		l:        l,
		defaults: defaults,
		calendar: calendar,
		now:      time.Now,
	}
}
