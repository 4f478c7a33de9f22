package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_BOOKING_ID_KEY           ContextKey = "booking_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "CTMD_SVC_"
)

// Upstream clinic backend resources, relative to the backend base URL.
const (
	UpstreamPathPatients         = "/patients"
	UpstreamPathDoctors          = "/doctors"
	UpstreamPathSchedules        = "/schedules"
	UpstreamPathRegisterSchedule = "/register_schedule"
	UpstreamPathSearchDoctor     = "/search_doctor"
	UpstreamPathDeleteDoctor     = "/delete_doctor"
	UpstreamPathSearchPatient    = "/search_patient"
	UpstreamPathDeletePatient    = "/delete_patient"
	UpstreamPathAppointments     = "/appointments"
	UpstreamPathProcessPayment   = "/process-payment"
)

const (
	UpstreamResourcePatient     = "patient"
	UpstreamResourceDoctor      = "doctor"
	UpstreamResourceSchedule    = "schedule"
	UpstreamResourceAppointment = "appointment"
	UpstreamResourcePayment     = "payment"
)

// The backend confirms these wire values verbatim.
const (
	UpstreamAppointmentBookedMessage = "Cita agendada exitosamente"
	UpstreamPaymentSuccessStatus     = "success"
)

const (
	RedisKeyBookingDraftFormat  = "booking:draft:%s"
	RedisKeyPatientListCache    = "directory:patients:last_good"
	RedisKeyDoctorListFormat    = "directory:doctors:%s:last_good"
	RedisKeyPaymentLockFormat   = "booking:payment:lock:%s"
	NotificationPublishMimeType = MIMEApplicationJSON
)

const (
	BookingStatusFilling = "filling"
	BookingStatusBooked  = "booked"
)

const (
	PaymentDescriptionFormat = "Pago de cita con %s"
	PaymentSimulatedToken    = "tok_simulado_123456"
)

const (
	NotificationBookedTitle      = "¡Cita Agendada Exitosamente!"
	NotificationBookedBodyFormat = "%s tiene una cita con %s el %s a las %s"
)

// Dates travel to the backend as UTC midnight, never local time.
const (
	BareDateLayout         = "2006-01-02"
	BackendDateTimeLayout  = "2006-01-02 15:04:05"
	OccupiedTimeSlotLayout = "15:04"
)
