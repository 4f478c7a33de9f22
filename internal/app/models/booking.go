package models

import (
	"citamed-service/internal/pkg/constvars"
	"time"
)

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
}

func (p Patient) FullName() string {
	return p.Name + " " + p.LastName
}

func (d Doctor) FullName() string {
	return d.Name + " " + d.LastName
}

// ScheduleDay holds the occupied times for one calendar date.
type ScheduleDay struct {
	Times []string `json:"times"`
}

// BookingDraft is the transient workflow state, persisted in redis for the
// lifetime of the booking session. The schedule belongs to the currently
// selected doctor only and is replaced wholesale when the doctor changes.
type BookingDraft struct {
	ID      string   `json:"id"`
	Status  string   `json:"status"`
	Patient *Patient `json:"patient,omitempty"`
	Doctor  *Doctor  `json:"doctor,omitempty"`
	Date    string   `json:"date,omitempty"`
	Time    string   `json:"time"`
	Reason  string   `json:"reason,omitempty"`

	Schedule map[string]ScheduleDay `json:"schedule,omitempty"`
	// ScheduleSeq is the sequence number of the last schedule refresh issued
	// for this draft. A completed fetch only lands while its number is still
	// the latest issued.
	ScheduleSeq int64 `json:"schedule_seq"`

	Confirmed *ConfirmedAppointment `json:"confirmed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OccupiedTimes returns the occupied set for a date, nil-safe.
func (d *BookingDraft) OccupiedTimes(date string) []string {
	if d.Schedule == nil {
		return nil
	}
	return d.Schedule[date].Times
}

// IsComplete reports whether every field required for submission is present.
func (d *BookingDraft) IsComplete() bool {
	return d.Patient != nil && d.Doctor != nil && d.Date != "" && d.Reason != ""
}

// AppointmentCostFor looks up the flat fee for a specialty, falling back to
// the baseline fee for unlisted specialties.
func AppointmentCostFor(specialty string) int {
	if cost, ok := constvars.SpecialtyCosts[specialty]; ok {
		return cost
	}
	return constvars.DefaultAppointmentCost
}

// ConfirmedAppointment is produced exactly once per successful submission and
// survives until replaced by the next booking on the same session.
type ConfirmedAppointment struct {
	PatientName  string    `json:"patient_name"`
	PatientEmail string    `json:"patient_email"`
	DoctorName   string    `json:"doctor_name"`
	DoctorEmail  string    `json:"doctor_email"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Reason       string    `json:"reason"`
	Cost         int       `json:"cost"`
	BookedAt     time.Time `json:"booked_at"`
}
