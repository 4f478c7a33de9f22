package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCostFor(t *testing.T) {
	assert.Equal(t, 50, AppointmentCostFor("Dermatology"))
	assert.Equal(t, 70, AppointmentCostFor("Cardiology"))
	assert.Equal(t, 40, AppointmentCostFor("Pediatrics"))
	assert.Equal(t, 30, AppointmentCostFor("General Medicine"))
	assert.Equal(t, 30, AppointmentCostFor("Neurology"), "unlisted specialties fall back to the baseline fee")
	assert.Equal(t, 30, AppointmentCostFor(""))
}

func TestBookingDraftIsComplete(t *testing.T) {
	draft := &BookingDraft{
		Patient: &Patient{ID: "p1", Name: "Ana", LastName: "García"},
		Doctor:  &Doctor{ID: "d1", Name: "Luis", LastName: "Pérez", Specialty: "Dermatology"},
		Date:    "2030-01-01",
		Time:    "10:00",
		Reason:  "Chequeo",
	}
	assert.True(t, draft.IsComplete())

	incomplete := *draft
	incomplete.Patient = nil
	assert.False(t, incomplete.IsComplete())

	incomplete = *draft
	incomplete.Doctor = nil
	assert.False(t, incomplete.IsComplete())

	incomplete = *draft
	incomplete.Date = ""
	assert.False(t, incomplete.IsComplete())

	incomplete = *draft
	incomplete.Reason = ""
	assert.False(t, incomplete.IsComplete())
}

func TestBookingDraftOccupiedTimes(t *testing.T) {
	draft := &BookingDraft{}
	assert.Nil(t, draft.OccupiedTimes("2030-01-01"))

	draft.Schedule = map[string]ScheduleDay{
		"2030-01-01": {Times: []string{"9:00", "10:00"}},
	}
	assert.Equal(t, []string{"9:00", "10:00"}, draft.OccupiedTimes("2030-01-01"))
	assert.Nil(t, draft.OccupiedTimes("2030-01-02"))
}

func TestFullName(t *testing.T) {
	patient := Patient{Name: "Ana", LastName: "García"}
	assert.Equal(t, "Ana García", patient.FullName())

	doctor := Doctor{Name: "Luis", LastName: "Pérez"}
	assert.Equal(t, "Luis Pérez", doctor.FullName())
}
