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

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("BookingController.CreateBooking requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("BookingController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CreateDraft(ctx)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking BookingUsecase.CreateDraft error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, response.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBookingSuccessMessage, response)
}

func (ctrl *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	requestID, bookingID, ok := ctrl.extractSessionContext(w, r, "GetBooking")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.GetDraft(ctx, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.GetBooking BookingUsecase.GetDraft error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.GetBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingSuccessMessage, response)
}

func (ctrl *BookingController) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, bookingID, ok := ctrl.extractSessionContext(w, r, "UpdateBooking")
	if !ok {
		return
	}

	request := new(requests.UpdateBooking)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("BookingController.UpdateBooking error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("BookingController.UpdateBooking request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.UpdateDraft(ctx, bookingID, request)
	if err != nil {
		ctrl.Log.Error("BookingController.UpdateBooking BookingUsecase.UpdateDraft error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.UpdateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingSuccessMessage, response)
}

func (ctrl *BookingController) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	requestID, bookingID, ok := ctrl.extractSessionContext(w, r, "SubmitBooking")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.SubmitDraft(ctx, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.SubmitBooking BookingUsecase.SubmitDraft error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.SubmitBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitBookingSuccessMessage, response)
}

func (ctrl *BookingController) PayBooking(w http.ResponseWriter, r *http.Request) {
	requestID, bookingID, ok := ctrl.extractSessionContext(w, r, "PayBooking")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.Pay(ctx, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.PayBooking BookingUsecase.Pay error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.PayBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PayBookingSuccessMessage, response)
}

func (ctrl *BookingController) GetTransactions(w http.ResponseWriter, r *http.Request) {
	requestID, bookingID, ok := ctrl.extractSessionContext(w, r, "GetTransactions")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.ListTransactions(ctx, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.GetTransactions BookingUsecase.ListTransactions error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.GetTransactions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTransactionsSuccessMessage, response)
}

func (ctrl *BookingController) extractSessionContext(w http.ResponseWriter, r *http.Request, method string) (requestID, bookingID string, ok bool) {
	requestID, ok = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("BookingController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", "", false
	}

	bookingID, ok = r.Context().Value(constvars.CONTEXT_BOOKING_ID_KEY).(string)
	if !ok || bookingID == "" {
		ctrl.Log.Error("BookingController."+method+" bookingID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingBookingID(nil))
		return "", "", false
	}

	ctrl.Log.Info("BookingController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID))
	return requestID, bookingID, true
}
