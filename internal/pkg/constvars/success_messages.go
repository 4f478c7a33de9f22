package constvars

const (
	GetPatientsSuccessMessage       = "Successfully retrieved patients"
	GetDoctorsSuccessMessage        = "Successfully retrieved doctors"
	GetScheduleSuccessMessage       = "Successfully retrieved doctor schedule"
	GetSlotsSuccessMessage          = "Successfully retrieved available slots"
	RegisterScheduleSuccessMessage  = "Successfully registered doctor schedule"
	DeleteDoctorSuccessMessage      = "Successfully deleted doctor"
	DeletePatientSuccessMessage     = "Successfully deleted patient"
	CreateBookingSuccessMessage     = "Successfully created booking draft"
	GetBookingSuccessMessage        = "Successfully retrieved booking"
	UpdateBookingSuccessMessage     = "Successfully updated booking draft"
	SubmitBookingSuccessMessage     = "Cita agendada exitosamente"
	PayBookingSuccessMessage        = "Pago simulado exitosamente."
	GetTransactionsSuccessMessage   = "Successfully retrieved booking transactions"
	SearchDirectorySuccessMessage   = "Successfully searched directory"
	NoDoctorsAvailableNoticeMessage = "No hay médicos disponibles para esta especialidad."
)
