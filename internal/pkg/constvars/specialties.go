package constvars

const (
	SpecialtyDermatology     = "Dermatology"
	SpecialtyCardiology      = "Cardiology"
	SpecialtyPediatrics      = "Pediatrics"
	SpecialtyGeneralMedicine = "General Medicine"
)

// SpecialtyCosts maps a specialty to its flat appointment fee.
// Unlisted specialties fall back to DefaultAppointmentCost.
var SpecialtyCosts = map[string]int{
	SpecialtyDermatology:     50,
	SpecialtyCardiology:      70,
	SpecialtyPediatrics:      40,
	SpecialtyGeneralMedicine: 30,
}

const DefaultAppointmentCost = 30

var Specialties = []string{
	SpecialtyDermatology,
	SpecialtyCardiology,
	SpecialtyPediatrics,
	SpecialtyGeneralMedicine,
}

// Bookable slot grid: every half hour from 9:00 up to 17:00, no 17:30.
const (
	SlotGridStartHour = 9
	SlotGridEndHour   = 17
)

const DefaultBookingTime = "10:00"
