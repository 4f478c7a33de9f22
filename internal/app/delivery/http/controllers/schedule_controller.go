package controllers

import (
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/exceptions"
	"citamed-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) GetDoctorSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.extractRequestID(w, r, "GetDoctorSchedule")
	if !ok {
		return
	}

	doctorEmail := r.URL.Query().Get("doctor_email")
	if doctorEmail == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.GetDoctorSchedule(ctx, doctorEmail)
	if err != nil {
		ctrl.Log.Error("ScheduleController.GetDoctorSchedule ScheduleUsecase.GetDoctorSchedule error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.GetDoctorSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, response)
}

func (ctrl *ScheduleController) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.extractRequestID(w, r, "GetAvailableSlots")
	if !ok {
		return
	}

	doctorEmail := r.URL.Query().Get("doctor_email")
	date := r.URL.Query().Get("date")
	if doctorEmail == "" || date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}
	if _, err := utils.ParseBareDate(date); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.AvailableSlots(ctx, doctorEmail, date)
	if err != nil {
		ctrl.Log.Error("ScheduleController.GetAvailableSlots ScheduleUsecase.AvailableSlots error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.GetAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccessMessage, response)
}

func (ctrl *ScheduleController) RegisterSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.extractRequestID(w, r, "RegisterSchedule")
	if !ok {
		return
	}

	request := new(requests.RegisterSchedule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ScheduleController.RegisterSchedule error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ScheduleController.RegisterSchedule request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ScheduleUsecase.RegisterSchedule(ctx, request); err != nil {
		ctrl.Log.Error("ScheduleController.RegisterSchedule ScheduleUsecase.RegisterSchedule error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.RegisterSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterScheduleSuccessMessage, nil)
}

func (ctrl *ScheduleController) extractRequestID(w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ScheduleController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}

	ctrl.Log.Info("ScheduleController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery))
	return requestID, true
}
