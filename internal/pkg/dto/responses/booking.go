package responses

// Booking is the externally visible state of a booking draft.
type Booking struct {
	ID        string                `json:"id"`
	Status    string                `json:"status"`
	Token     string                `json:"token,omitempty"`
	Patient   *Patient              `json:"patient,omitempty"`
	Doctor    *Doctor               `json:"doctor,omitempty"`
	Date      string                `json:"date,omitempty"`
	Time      string                `json:"time,omitempty"`
	Reason    string                `json:"reason,omitempty"`
	Schedule  map[string][]string   `json:"schedule,omitempty"`
	Confirmed *ConfirmedAppointment `json:"confirmed_appointment,omitempty"`
}

// ConfirmedAppointment is materialized once per successful submission.
type ConfirmedAppointment struct {
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Cost        int    `json:"cost"`
}

type Payment struct {
	Status      string `json:"status"`
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type Transaction struct {
	ID          string `json:"id"`
	BookingID   string `json:"booking_id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}
