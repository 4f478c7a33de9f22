package requests

// CreateAppointment is the wire payload POSTed to the clinic backend.
type CreateAppointment struct {
	PatientEmail string `json:"patient_email"`
	DoctorEmail  string `json:"doctor_email"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Reason       string `json:"reason"`
	Cost         int    `json:"cost"`
	Specialty    string `json:"specialty"`
}

// ProcessPayment is the wire payload for the simulated payment endpoint.
// Amount travels in cents.
type ProcessPayment struct {
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Token       string `json:"token"`
}
