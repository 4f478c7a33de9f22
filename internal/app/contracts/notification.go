package contracts

import (
	"context"
)

// NotificationService publishes booking side-effect notifications.
// Publishing is best-effort: callers log failures and move on.
type NotificationService interface {
	PublishBookingConfirmed(ctx context.Context, patientName, doctorName, date, timeOfDay string) error
}
