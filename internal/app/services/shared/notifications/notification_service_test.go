package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingConfirmedMessage(t *testing.T) {
	msg := newBookingConfirmedMessage("Ana García", "Luis Pérez", "2030-01-01", "10:00")

	assert.Equal(t, "¡Cita Agendada Exitosamente!", msg.Title)
	assert.Equal(t, "Ana García tiene una cita con Luis Pérez el 2030-01-01 a las 10:00", msg.Body)
	assert.Equal(t, "Ana García", msg.PatientName)
	assert.Equal(t, "Luis Pérez", msg.DoctorName)
	assert.Equal(t, "2030-01-01", msg.Date)
	assert.Equal(t, "10:00", msg.Time)
}
