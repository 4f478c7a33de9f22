package responses

type Patient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}

type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LastName  string `json:"last_name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Photo     string `json:"photo,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	Cost      int    `json:"cost"`
}

type PatientList struct {
	Patients []Patient `json:"patients"`
	Stale    bool      `json:"stale,omitempty"`
}

type DoctorList struct {
	Doctors            []Doctor `json:"doctors"`
	NoDoctorsAvailable bool     `json:"no_doctors_available"`
	Stale              bool     `json:"stale,omitempty"`
}
