package requests

// RegisterSchedule registers booked slots for a doctor on a date, passed
// through to the clinic backend.
type RegisterSchedule struct {
	DoctorEmail string   `json:"doctor_email" validate:"required,email"`
	Date        string   `json:"date" validate:"required,iso_date"`
	Times       []string `json:"times" validate:"required,min=1,dive,time_slot"`
}
