package clock

import (
	"time"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// System reads the wall clock in the local time zone.
type System struct {
	now func() time.Time
}

// NewSystem returns a clock backed by time.Now.
func NewSystem() *System {
	return &System{now: time.Now}
}

// Today implements ports.Clock.
func (s *System) Today() domain.Date {
	return domain.DateOf(s.now())
}

var _ ports.Clock = (*System)(nil)
