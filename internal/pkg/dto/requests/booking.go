package requests

// UpdateBooking carries incremental draft updates. Every field is optional;
// only present fields are applied to the draft.
type UpdateBooking struct {
	PatientID   string `json:"patient_id,omitempty"`
	DoctorEmail string `json:"doctor_email,omitempty"`
	Specialty   string `json:"specialty,omitempty" validate:"omitempty,specialty"`
	Date        string `json:"date,omitempty" validate:"omitempty,iso_date"`
	Time        string `json:"time,omitempty" validate:"omitempty,time_slot"`
	Reason      string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type ListDoctors struct {
	Specialty string `json:"specialty" validate:"omitempty,specialty"`
}
