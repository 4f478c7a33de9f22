package bookings

import (
	"citamed-service/internal/app/config"
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/app/models"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/exceptions"
	"citamed-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	RedisRepository       contracts.RedisRepository
	LockService           contracts.LockerService
	PatientClient         contracts.PatientClient
	DoctorClient          contracts.DoctorClient
	ScheduleClient        contracts.ScheduleClient
	AppointmentClient     contracts.AppointmentClient
	PaymentClient         contracts.PaymentClient
	TransactionRepository contracts.TransactionRepository
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	redisRepository contracts.RedisRepository,
	lockService contracts.LockerService,
	patientClient contracts.PatientClient,
	doctorClient contracts.DoctorClient,
	scheduleClient contracts.ScheduleClient,
	appointmentClient contracts.AppointmentClient,
	paymentClient contracts.PaymentClient,
	transactionRepository contracts.TransactionRepository,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			RedisRepository:       redisRepository,
			LockService:           lockService,
			PatientClient:         patientClient,
			DoctorClient:          doctorClient,
			ScheduleClient:        scheduleClient,
			AppointmentClient:     appointmentClient,
			PaymentClient:         paymentClient,
			TransactionRepository: transactionRepository,
			NotificationService:   notificationService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) CreateDraft(ctx context.Context) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now().UTC()
	draft := &models.BookingDraft{
		ID:        utils.GenerateBookingID(),
		Status:    constvars.BookingStatusFilling,
		Time:      constvars.DefaultBookingTime,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.saveDraft(ctx, draft); err != nil {
		uc.Log.Error("bookingUsecase.CreateDraft error persisting draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateBookingSessionJWT(draft.ID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateDraft error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.CreateDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, draft.ID),
	)

	response := uc.buildBookingResponse(draft)
	response.Token = token
	return response, nil
}

func (uc *bookingUsecase) GetDraft(ctx context.Context, bookingID string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	draft, err := uc.loadDraft(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.GetDraft error loading draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildBookingResponse(draft), nil
}

func (uc *bookingUsecase) UpdateDraft(ctx context.Context, bookingID string, request *requests.UpdateBooking) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.UpdateDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	draft, err := uc.loadDraft(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.UpdateDraft error loading draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// A mutation after a successful booking begins a new draft cycle; the
	// confirmed appointment stays until the next submission replaces it.
	if draft.Status == constvars.BookingStatusBooked {
		draft.Status = constvars.BookingStatusFilling
	}

	if request.PatientID != "" {
		if err := uc.applyPatient(ctx, draft, request.PatientID); err != nil {
			return nil, err
		}
	}

	if request.DoctorEmail != "" {
		if err := uc.applyDoctor(ctx, draft, request.DoctorEmail, request.Specialty); err != nil {
			return nil, err
		}
	}

	if request.Date != "" {
		inPast, err := utils.IsDateInPast(request.Date, time.Now())
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		if inPast {
			uc.Log.Info("bookingUsecase.UpdateDraft rejected past date",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDateKey, request.Date),
			)
			return nil, exceptions.ErrBookingDateInPast(fmt.Errorf("date %s is in the past", request.Date))
		}
		draft.Date = request.Date
	}

	if request.Time != "" {
		// Occupied sets carry the grid's non-padded form, so the draft only
		// ever stores the canonical representation.
		slot, err := utils.CanonicalTimeSlot(request.Time)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		if draft.Date != "" && utils.ContainsTime(draft.OccupiedTimes(draft.Date), slot) {
			uc.Log.Info("bookingUsecase.UpdateDraft rejected occupied slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDateKey, draft.Date),
				zap.String(constvars.LoggingTimeKey, slot),
			)
			return nil, exceptions.ErrBookingSlotTaken(fmt.Errorf("time %s occupied on %s", slot, draft.Date))
		}
		draft.Time = slot
	}

	if request.Reason != "" {
		draft.Reason = request.Reason
	}

	draft.UpdatedAt = time.Now().UTC()
	if err := uc.saveDraft(ctx, draft); err != nil {
		uc.Log.Error("bookingUsecase.UpdateDraft error persisting draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.UpdateDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, draft.ID),
	)
	return uc.buildBookingResponse(draft), nil
}

func (uc *bookingUsecase) SubmitDraft(ctx context.Context, bookingID string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SubmitDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	draft, err := uc.loadDraft(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.SubmitDraft error loading draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !draft.IsComplete() {
		return nil, exceptions.ErrBookingFormIncomplete(fmt.Errorf("draft %s incomplete", draft.ID))
	}

	inPast, err := utils.IsDateInPast(draft.Date, time.Now())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if inPast {
		return nil, exceptions.ErrBookingDateInPast(fmt.Errorf("date %s is in the past", draft.Date))
	}

	if utils.ContainsTime(draft.OccupiedTimes(draft.Date), draft.Time) {
		return nil, exceptions.ErrBookingSlotTaken(fmt.Errorf("time %s occupied on %s", draft.Time, draft.Date))
	}

	cost := models.AppointmentCostFor(draft.Doctor.Specialty)
	backendDate, err := utils.FormatDateForBackend(draft.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	appointmentRequest := &requests.CreateAppointment{
		PatientEmail: draft.Patient.Email,
		DoctorEmail:  draft.Doctor.Email,
		Date:         backendDate,
		Time:         draft.Time,
		Reason:       draft.Reason,
		Cost:         cost,
		Specialty:    draft.Doctor.Specialty,
	}

	uc.Log.Info("bookingUsecase.SubmitDraft creating appointment",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorEmailKey, draft.Doctor.Email),
		zap.String(constvars.LoggingDateKey, backendDate),
		zap.String(constvars.LoggingTimeKey, draft.Time),
		zap.Int(constvars.LoggingCostKey, cost),
	)

	if err := uc.AppointmentClient.CreateAppointment(ctx, appointmentRequest); err != nil {
		uc.Log.Error("bookingUsecase.SubmitDraft error creating appointment on backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.recordTransaction(ctx, draft, models.TransactionTypeBooking, models.TransactionFailed, cost, "")
		return nil, err
	}

	uc.recordTransaction(ctx, draft, models.TransactionTypeBooking, models.TransactionCompleted, cost, "")

	now := time.Now().UTC()
	draft.Status = constvars.BookingStatusBooked
	draft.Confirmed = &models.ConfirmedAppointment{
		PatientName:  draft.Patient.FullName(),
		PatientEmail: draft.Patient.Email,
		DoctorName:   draft.Doctor.FullName(),
		DoctorEmail:  draft.Doctor.Email,
		Date:         draft.Date,
		Time:         draft.Time,
		Reason:       draft.Reason,
		Cost:         cost,
		BookedAt:     now,
	}

	// The session starts a fresh draft cycle: the confirmed appointment takes
	// over and the form fields reset for the next booking.
	draft.Patient = nil
	draft.Doctor = nil
	draft.Date = ""
	draft.Time = constvars.DefaultBookingTime
	draft.Reason = ""
	draft.Schedule = nil

	draft.UpdatedAt = now
	if err := uc.saveDraft(ctx, draft); err != nil {
		uc.Log.Error("bookingUsecase.SubmitDraft error persisting booked draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.NotificationService.PublishBookingConfirmed(
		ctx,
		draft.Confirmed.PatientName,
		draft.Confirmed.DoctorName,
		draft.Confirmed.Date,
		draft.Confirmed.Time,
	); err != nil {
		// Notifications are best effort, the booking itself already succeeded.
		uc.Log.Warn("bookingUsecase.SubmitDraft error publishing confirmation notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("bookingUsecase.SubmitDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, draft.ID),
	)
	return uc.buildBookingResponse(draft), nil
}

func (uc *bookingUsecase) Pay(ctx context.Context, bookingID string) (*responses.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Pay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	draft, err := uc.loadDraft(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.Pay error loading draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if draft.Confirmed == nil {
		return nil, exceptions.ErrBookingNotBooked(fmt.Errorf("draft %s has no confirmed appointment", draft.ID))
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyPaymentLockFormat, draft.ID)
	lockTTL := time.Duration(uc.InternalConfig.Booking.PaymentLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrPaymentInFlight(fmt.Errorf("payment lock held for booking %s", draft.ID))
	}
	defer func() {
		if unlockErr := uc.LockService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("bookingUsecase.Pay error releasing payment lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	amount := draft.Confirmed.Cost * 100
	description := fmt.Sprintf(constvars.PaymentDescriptionFormat, draft.Confirmed.DoctorName)
	paymentRequest := &requests.ProcessPayment{
		Amount:      amount,
		Currency:    uc.InternalConfig.Booking.PaymentCurrency,
		Description: description,
		Token:       constvars.PaymentSimulatedToken,
	}

	if err := uc.PaymentClient.ProcessPayment(ctx, paymentRequest); err != nil {
		uc.Log.Error("bookingUsecase.Pay error processing payment on backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.recordTransaction(ctx, draft, models.TransactionTypePayment, models.TransactionFailed, amount, description)
		return nil, err
	}

	uc.recordTransaction(ctx, draft, models.TransactionTypePayment, models.TransactionCompleted, amount, description)

	uc.Log.Info("bookingUsecase.Pay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, draft.ID),
	)
	return &responses.Payment{
		Status:      constvars.UpstreamPaymentSuccessStatus,
		Amount:      amount,
		Currency:    uc.InternalConfig.Booking.PaymentCurrency,
		Description: description,
	}, nil
}

func (uc *bookingUsecase) ListTransactions(ctx context.Context, bookingID string) ([]responses.Transaction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListTransactions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	transactions, err := uc.TransactionRepository.FindByBookingID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListTransactions error fetching transactions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Transaction, len(transactions))
	for i, transaction := range transactions {
		result[i] = responses.Transaction{
			ID:          transaction.ID,
			BookingID:   transaction.BookingID,
			Type:        string(transaction.Type),
			Status:      string(transaction.Status),
			Amount:      transaction.Amount,
			Currency:    transaction.Currency,
			Description: transaction.Description,
			CreatedAt:   transaction.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return result, nil
}

func (uc *bookingUsecase) applyPatient(ctx context.Context, draft *models.BookingDraft, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patients, err := uc.PatientClient.FindAll(ctx)
	if err != nil {
		uc.Log.Error("bookingUsecase.applyPatient error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	for _, patient := range patients {
		if patient.ID == patientID {
			selected := patient
			draft.Patient = &selected
			return nil
		}
	}
	return exceptions.ErrUnknownPatient(fmt.Errorf("patient %s not in directory", patientID))
}

func (uc *bookingUsecase) applyDoctor(ctx context.Context, draft *models.BookingDraft, doctorEmail, specialty string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var doctors []models.Doctor
	var err error
	if specialty != "" {
		doctors, err = uc.DoctorClient.FindBySpecialty(ctx, specialty)
	} else {
		doctors, err = uc.DoctorClient.FindAll(ctx)
	}
	if err != nil {
		uc.Log.Error("bookingUsecase.applyDoctor error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	var selected *models.Doctor
	for _, doctor := range doctors {
		if doctor.Email == doctorEmail {
			match := doctor
			selected = &match
			break
		}
	}
	if selected == nil {
		return exceptions.ErrUnknownDoctor(fmt.Errorf("doctor %s not in directory", doctorEmail))
	}

	sameDoctor := draft.Doctor != nil && draft.Doctor.Email == selected.Email
	draft.Doctor = selected
	if sameDoctor {
		return nil
	}

	// New doctor selected: the old schedule no longer applies. The sequence
	// number fences this refresh against any concurrently issued one, so a
	// slow fetch for a previously selected doctor can never land afterwards.
	draft.Schedule = nil
	draft.ScheduleSeq++
	seq := draft.ScheduleSeq
	if err := uc.saveDraft(ctx, draft); err != nil {
		return err
	}

	entries, err := uc.ScheduleClient.FindByDoctorEmail(ctx, selected.Email)
	if err != nil {
		// An unreachable schedule service degrades to an empty occupied set;
		// the slot-taken check at submission still protects the booking.
		uc.Log.Warn("bookingUsecase.applyDoctor error fetching doctor schedule, using empty schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorEmailKey, selected.Email),
			zap.Error(err),
		)
		entries = nil
	}

	current, err := uc.loadDraft(ctx, draft.ID)
	if err != nil {
		return err
	}
	if current.ScheduleSeq != seq {
		uc.Log.Info("bookingUsecase.applyDoctor discarding stale schedule fetch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingScheduleSeqKey, seq),
		)
		*draft = *current
		return nil
	}

	schedule := make(map[string]models.ScheduleDay, len(entries))
	for _, entry := range entries {
		schedule[entry.Date] = models.ScheduleDay{Times: entry.Times}
	}
	draft.Schedule = schedule
	return nil
}

// recordTransaction appends an audit record, best effort. A failed insert is
// logged but never fails the booking or payment it describes.
func (uc *bookingUsecase) recordTransaction(ctx context.Context, draft *models.BookingDraft, txType models.TransactionType, status models.TransactionStatus, amount int, description string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patientEmail, doctorEmail := "", ""
	if draft.Patient != nil {
		patientEmail = draft.Patient.Email
	} else if draft.Confirmed != nil {
		patientEmail = draft.Confirmed.PatientEmail
	}
	if draft.Doctor != nil {
		doctorEmail = draft.Doctor.Email
	} else if draft.Confirmed != nil {
		doctorEmail = draft.Confirmed.DoctorEmail
	}

	transaction := &models.Transaction{
		ID:           utils.GenerateTransactionID(),
		BookingID:    draft.ID,
		Type:         txType,
		Status:       status,
		PatientEmail: patientEmail,
		DoctorEmail:  doctorEmail,
		Amount:       amount,
		Currency:     uc.InternalConfig.Booking.PaymentCurrency,
		Description:  description,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.TransactionRepository.Insert(ctx, transaction); err != nil {
		uc.Log.Warn("bookingUsecase.recordTransaction error inserting transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transaction.ID),
			zap.Error(err),
		)
		return
	}

	uc.Log.Info("bookingUsecase.recordTransaction inserted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transaction.ID),
	)
}

func (uc *bookingUsecase) loadDraft(ctx context.Context, bookingID string) (*models.BookingDraft, error) {
	data, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisKeyBookingDraftFormat, bookingID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrBookingNotFound(fmt.Errorf("draft %s not found", bookingID))
	}

	draft := new(models.BookingDraft)
	if err := json.Unmarshal([]byte(data), draft); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return draft, nil
}

func (uc *bookingUsecase) saveDraft(ctx context.Context, draft *models.BookingDraft) error {
	ttl := time.Duration(uc.InternalConfig.Booking.DraftTTLInHours) * time.Hour
	return uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeyBookingDraftFormat, draft.ID), draft, ttl)
}

func (uc *bookingUsecase) buildBookingResponse(draft *models.BookingDraft) *responses.Booking {
	response := &responses.Booking{
		ID:     draft.ID,
		Status: draft.Status,
		Date:   draft.Date,
		Time:   draft.Time,
		Reason: draft.Reason,
	}

	if draft.Patient != nil {
		response.Patient = &responses.Patient{
			ID:       draft.Patient.ID,
			Name:     draft.Patient.Name,
			LastName: draft.Patient.LastName,
			Email:    draft.Patient.Email,
		}
	}

	if draft.Doctor != nil {
		response.Doctor = &responses.Doctor{
			ID:        draft.Doctor.ID,
			Name:      draft.Doctor.Name,
			LastName:  draft.Doctor.LastName,
			Specialty: draft.Doctor.Specialty,
			Phone:     draft.Doctor.Phone,
			Email:     draft.Doctor.Email,
			Photo:     draft.Doctor.Photo,
			Cost:      models.AppointmentCostFor(draft.Doctor.Specialty),
		}
	}

	if len(draft.Schedule) > 0 {
		schedule := make(map[string][]string, len(draft.Schedule))
		for date, day := range draft.Schedule {
			schedule[date] = day.Times
		}
		response.Schedule = schedule
	}

	if draft.Confirmed != nil {
		response.Confirmed = &responses.ConfirmedAppointment{
			PatientName: draft.Confirmed.PatientName,
			DoctorName:  draft.Confirmed.DoctorName,
			Date:        draft.Confirmed.Date,
			Time:        draft.Confirmed.Time,
			Reason:      draft.Confirmed.Reason,
			Cost:        draft.Confirmed.Cost,
		}
	}

	return response
}
