package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientBookingNotFound               = "Booking session not found or already expired"
	ErrClientBookingFormIncomplete         = "Por favor, complete todos los campos."
	ErrClientBookingDateInPast             = "La fecha seleccionada no es válida."
	ErrClientBookingSlotTaken              = "La hora seleccionada ya está ocupada. Por favor, elige otra."
	ErrClientBookingNotBooked              = "No hay detalles de la cita para procesar el pago."
	ErrClientPaymentInFlight               = "A payment for this appointment is already being processed"
	ErrClientUpstreamNoResponse            = "No se recibió respuesta del servidor"
	ErrClientUpstreamUnknown               = "Error desconocido"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed          = "Input validation failed"
	ErrDevInvalidInput              = "Invalid input"
	ErrDevCannotParseJSON           = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevCannotParseDate           = "Failed to parse date value"
	ErrDevCannotParseTime           = "Failed to parse time slot value"
	ErrDevServerProcess             = "Unhandled server processing error"
	ErrDevServerDeadlineExceeded    = "Server deadline exceeded while processing request"
	ErrDevCreateHTTPRequest         = "Failed to create HTTP request"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request to upstream"
	ErrDevMissingRequestID          = "Request ID missing from request context"
	ErrDevMissingBookingID          = "Booking ID missing from request context"
	ErrDevAuthTokenMissing          = "Authorization token missing"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "Failed to generate session token"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAPIKeyInvalid             = "API key missing or invalid"

	ErrDevBookingDraftNotFound   = "Booking draft not found in store"
	ErrDevBookingFormIncomplete  = "Draft missing one of patient, doctor, date, reason"
	ErrDevBookingDateInPast      = "Selected date instant is before current instant"
	ErrDevBookingSlotTaken       = "Selected time present in occupied set for selected date"
	ErrDevBookingNotBooked       = "Draft has no confirmed appointment to pay for"
	ErrDevPaymentLockNotAcquired = "Payment single-flight lock not acquired"
	ErrDevUnknownPatient         = "Selected patient not present in directory"
	ErrDevUnknownDoctor          = "Selected doctor not present in directory"

	ErrDevUpstreamGetResource    = "Failed to fetch %s from clinic backend"
	ErrDevUpstreamCreateResource = "Failed to create %s on clinic backend"
	ErrDevUpstreamDeleteResource = "Failed to delete %s on clinic backend"
	ErrDevUpstreamDecodeResponse = "Failed to decode %s response from clinic backend"
	ErrDevUpstreamRejected       = "Clinic backend rejected the request"

	ErrDevRedisGetData        = "Failed to get data from redis"
	ErrDevRedisSetData        = "Failed to set data to redis"
	ErrDevRedisDeleteData     = "Failed to delete data from redis"
	ErrDevRedisSetNX          = "Failed to execute SetNX on redis"
	ErrDevRedisUnlock         = "Failed to release redis lock"
	ErrDevRedisGetNoData      = "No data found in redis for key %s"
	ErrDevMongoInsertDocument = "Failed to insert document to mongo database"
	ErrDevMongoFindDocument   = "Failed to find document in mongo database"
	ErrDevMongoIterateCursor  = "Failed to iterate mongo cursor"
	ErrDevRabbitMQPublish     = "Failed to publish message to queue %s"
	ErrDevMinioPresignObject  = "Failed to presign object URL in bucket %s"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"oneof":     "must be one of [%s]",
	"specialty": "must be a known medical specialty",
	"iso_date":  "must be a calendar date in YYYY-MM-DD format",
	"time_slot": "must be a time of day in H:MM or HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
