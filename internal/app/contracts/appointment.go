package contracts

import (
	"citamed-service/internal/pkg/dto/requests"
	"context"
)

type AppointmentClient interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) error
}
