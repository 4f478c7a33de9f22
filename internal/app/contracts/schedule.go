package contracts

import (
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
	"context"
)

type ScheduleClient interface {
	FindByDoctorEmail(ctx context.Context, doctorEmail string) ([]responses.UpstreamScheduleEntry, error)
	RegisterSchedule(ctx context.Context, request *requests.RegisterSchedule) error
}

type ScheduleUsecase interface {
	GetDoctorSchedule(ctx context.Context, doctorEmail string) (*responses.DoctorSchedule, error)
	AvailableSlots(ctx context.Context, doctorEmail, date string) (*responses.AvailableSlots, error)
	RegisterSchedule(ctx context.Context, request *requests.RegisterSchedule) error
}
