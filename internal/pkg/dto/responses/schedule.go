package responses

// DoctorSchedule maps an ISO date to the times already occupied on it.
type DoctorSchedule struct {
	DoctorEmail string              `json:"doctor_email"`
	Schedule    map[string][]string `json:"schedule"`
}

type AvailableSlots struct {
	DoctorEmail string   `json:"doctor_email"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
}
