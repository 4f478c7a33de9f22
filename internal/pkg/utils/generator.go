package utils

import (
	"citamed-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return fmt.Sprintf("%s%d_%s", constvars.REQUEST_ID_PREFIX, time.Now().UnixNano(), uuid.NewString()[:8])
}

func GenerateBookingID() string {
	return uuid.NewString()
}

func GenerateTransactionID() string {
	return uuid.NewString()
}
