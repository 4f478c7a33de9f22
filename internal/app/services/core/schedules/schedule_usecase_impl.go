package schedules

import (
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleClient contracts.ScheduleClient
	Log            *zap.Logger
}

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(scheduleClient contracts.ScheduleClient, logger *zap.Logger) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		instance := &scheduleUsecase{
			ScheduleClient: scheduleClient,
			Log:            logger,
		}
		scheduleUsecaseInstance = instance
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) GetDoctorSchedule(ctx context.Context, doctorEmail string) (*responses.DoctorSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetDoctorSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorEmailKey, doctorEmail),
	)

	entries, err := uc.ScheduleClient.FindByDoctorEmail(ctx, doctorEmail)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetDoctorSchedule error fetching schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	schedule := make(map[string][]string, len(entries))
	for _, entry := range entries {
		schedule[entry.Date] = entry.Times
	}

	uc.Log.Info("scheduleUsecase.GetDoctorSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingScheduleDaysKey, len(schedule)),
	)
	return &responses.DoctorSchedule{
		DoctorEmail: doctorEmail,
		Schedule:    schedule,
	}, nil
}

func (uc *scheduleUsecase) AvailableSlots(ctx context.Context, doctorEmail, date string) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.AvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorEmailKey, doctorEmail),
		zap.String(constvars.LoggingDateKey, date),
	)

	doctorSchedule, err := uc.GetDoctorSchedule(ctx, doctorEmail)
	if err != nil {
		return nil, err
	}

	occupied := doctorSchedule.Schedule[date]
	slots := make([]string, 0)
	for _, slot := range utils.GenerateTimeSlots() {
		if !utils.ContainsTime(occupied, slot) {
			slots = append(slots, slot)
		}
	}

	return &responses.AvailableSlots{
		DoctorEmail: doctorEmail,
		Date:        date,
		Slots:       slots,
	}, nil
}

func (uc *scheduleUsecase) RegisterSchedule(ctx context.Context, request *requests.RegisterSchedule) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.RegisterSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorEmailKey, request.DoctorEmail),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	if err := uc.ScheduleClient.RegisterSchedule(ctx, request); err != nil {
		uc.Log.Error("scheduleUsecase.RegisterSchedule error registering schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("scheduleUsecase.RegisterSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
