package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentLifecycle(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusScheduled}

	assert.True(t, a.IsScheduled())
	assert.False(t, a.IsCancelled())

	a.Cancel()

	assert.False(t, a.IsScheduled())
	assert.True(t, a.IsCancelled())
}

func TestWeekdayIsValid(t *testing.T) {
	for _, day := range []Weekday{WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday, WeekdaySaturday, WeekdaySunday} {
		assert.True(t, day.IsValid(), string(day))
	}
	assert.False(t, Weekday("FUN").IsValid())
	assert.False(t, Weekday("monday").IsValid())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleDoctor.IsValid())
	assert.True(t, RolePatient.IsValid())
	assert.False(t, Role("admin").IsValid())
}
