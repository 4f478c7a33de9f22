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

	"go.uber.org/zap"
)

type DirectoryController struct {
	Log              *zap.Logger
	DirectoryUsecase contracts.DirectoryUsecase
}

func NewDirectoryController(logger *zap.Logger, directoryUsecase contracts.DirectoryUsecase) *DirectoryController {
	return &DirectoryController{
		Log:              logger,
		DirectoryUsecase: directoryUsecase,
	}
}

func (ctrl *DirectoryController) GetPatients(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.extractRequestID(w, r, "GetPatients")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	name := r.URL.Query().Get("name")

	var err error
	var response interface{}
	if name != "" {
		response, err = ctrl.DirectoryUsecase.SearchPatients(ctx, name)
	} else {
		response, err = ctrl.DirectoryUsecase.ListPatients(ctx)
	}
	if err != nil {
		ctrl.Log.Error("DirectoryController.GetPatients DirectoryUsecase error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DirectoryController.GetPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, response)
}

func (ctrl *DirectoryController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.extractRequestID(w, r, "DeletePatient")
	if !ok {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DirectoryUsecase.RemovePatient(ctx, name); err != nil {
		ctrl.Log.Error("DirectoryController.DeletePatient DirectoryUsecase.RemovePatient error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DirectoryController.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, nil)
}

func (ctrl *DirectoryController) GetDoctors(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.extractRequestID(w, r, "GetDoctors")
	if !ok {
		return
	}

	name := r.URL.Query().Get("name")
	specialty := r.URL.Query().Get("specialty")

	if specialty != "" {
		listRequest := &requests.ListDoctors{Specialty: specialty}
		if err := utils.ValidateStruct(listRequest); err != nil {
			ctrl.Log.Error("DirectoryController.GetDoctors specialty validation failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err))
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var err error
	var response interface{}
	if name != "" {
		response, err = ctrl.DirectoryUsecase.SearchDoctors(ctx, name)
	} else {
		response, err = ctrl.DirectoryUsecase.ListDoctors(ctx, specialty)
	}
	if err != nil {
		ctrl.Log.Error("DirectoryController.GetDoctors DirectoryUsecase error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DirectoryController.GetDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, response)
}

func (ctrl *DirectoryController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.extractRequestID(w, r, "DeleteDoctor")
	if !ok {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DirectoryUsecase.RemoveDoctor(ctx, name); err != nil {
		ctrl.Log.Error("DirectoryController.DeleteDoctor DirectoryUsecase.RemoveDoctor error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DirectoryController.DeleteDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDoctorSuccessMessage, nil)
}

func (ctrl *DirectoryController) extractRequestID(w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("DirectoryController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}

	ctrl.Log.Info("DirectoryController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery))
	return requestID, true
}
