package responses

// Wire shapes returned by the clinic backend.

type UpstreamPatientList struct {
	Patients []Patient `json:"patients"`
}

type UpstreamDoctorList struct {
	Doctors []Doctor `json:"doctors"`
}

type UpstreamScheduleEntry struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type UpstreamScheduleList struct {
	Schedules []UpstreamScheduleEntry `json:"schedules"`
}

type UpstreamAppointmentCreated struct {
	Message string `json:"message"`
}

type UpstreamPaymentResult struct {
	Status string `json:"status"`
}

// UpstreamError is the backend's structured error body. Detail, when present,
// is shown to the user verbatim.
type UpstreamError struct {
	Detail string `json:"detail"`
}
