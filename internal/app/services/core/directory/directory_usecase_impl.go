package directory

import (
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/app/models"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type directoryUsecase struct {
	PatientClient   contracts.PatientClient
	DoctorClient    contracts.DoctorClient
	RedisRepository contracts.RedisRepository
	PhotoStorage    contracts.PhotoStorage
	Log             *zap.Logger
}

var (
	directoryUsecaseInstance contracts.DirectoryUsecase
	onceDirectoryUsecase     sync.Once
)

func NewDirectoryUsecase(
	patientClient contracts.PatientClient,
	doctorClient contracts.DoctorClient,
	redisRepository contracts.RedisRepository,
	photoStorage contracts.PhotoStorage,
	logger *zap.Logger,
) contracts.DirectoryUsecase {
	onceDirectoryUsecase.Do(func() {
		instance := &directoryUsecase{
			PatientClient:   patientClient,
			DoctorClient:    doctorClient,
			RedisRepository: redisRepository,
			PhotoStorage:    photoStorage,
			Log:             logger,
		}
		directoryUsecaseInstance = instance
	})
	return directoryUsecaseInstance
}

func (uc *directoryUsecase) ListPatients(ctx context.Context) (*responses.PatientList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("directoryUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientClient.FindAll(ctx)
	if err != nil {
		uc.Log.Error("directoryUsecase.ListPatients error fetching patients from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.lastGoodPatients(ctx, err)
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyPatientListCache, patients, 0); err != nil {
		uc.Log.Warn("directoryUsecase.ListPatients error caching patient list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("directoryUsecase.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return &responses.PatientList{Patients: toPatientResponses(patients)}, nil
}

func (uc *directoryUsecase) SearchPatients(ctx context.Context, name string) (*responses.PatientList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("directoryUsecase.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientClient.SearchByName(ctx, name)
	if err != nil {
		uc.Log.Error("directoryUsecase.SearchPatients error searching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.PatientList{Patients: toPatientResponses(patients)}, nil
}

func (uc *directoryUsecase) RemovePatient(ctx context.Context, name string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("directoryUsecase.RemovePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.PatientClient.DeleteByName(ctx, name); err != nil {
		uc.Log.Error("directoryUsecase.RemovePatient error deleting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	// The cached list is now stale. Drop it rather than rebuilding here.
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyPatientListCache); err != nil {
		uc.Log.Warn("directoryUsecase.RemovePatient error invalidating patient cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return nil
}

func (uc *directoryUsecase) ListDoctors(ctx context.Context, specialty string) (*responses.DoctorList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("directoryUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialtyKey, specialty),
	)

	var doctors []models.Doctor
	var err error
	if specialty == "" {
		doctors, err = uc.DoctorClient.FindAll(ctx)
	} else {
		doctors, err = uc.DoctorClient.FindBySpecialty(ctx, specialty)
	}
	if err != nil {
		uc.Log.Error("directoryUsecase.ListDoctors error fetching doctors from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.lastGoodDoctors(ctx, specialty, err)
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeyDoctorListFormat, specialty)
	if err := uc.RedisRepository.Set(ctx, cacheKey, doctors, 0); err != nil {
		uc.Log.Warn("directoryUsecase.ListDoctors error caching doctor list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("directoryUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(doctors)),
	)
	return &responses.DoctorList{
		Doctors:            uc.toDoctorResponses(ctx, doctors),
		NoDoctorsAvailable: len(doctors) == 0,
	}, nil
}

func (uc *directoryUsecase) SearchDoctors(ctx context.Context, name string) (*responses.DoctorList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("directoryUsecase.SearchDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorClient.SearchByName(ctx, name)
	if err != nil {
		uc.Log.Error("directoryUsecase.SearchDoctors error searching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.DoctorList{
		Doctors:            uc.toDoctorResponses(ctx, doctors),
		NoDoctorsAvailable: len(doctors) == 0,
	}, nil
}

func (uc *directoryUsecase) RemoveDoctor(ctx context.Context, name string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("directoryUsecase.RemoveDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.DoctorClient.DeleteByName(ctx, name); err != nil {
		uc.Log.Error("directoryUsecase.RemoveDoctor error deleting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	// Doctor caches are keyed per specialty and the deleted doctor's specialty
	// is unknown here, so invalidate the unfiltered list only. Per-specialty
	// entries converge on the next successful fetch.
	if err := uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyDoctorListFormat, "")); err != nil {
		uc.Log.Warn("directoryUsecase.RemoveDoctor error invalidating doctor cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return nil
}

// lastGoodPatients serves the most recent successfully fetched patient list
// when the backend is unreachable. Callers see Stale=true on the response.
func (uc *directoryUsecase) lastGoodPatients(ctx context.Context, fetchErr error) (*responses.PatientList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyPatientListCache)
	if err != nil || cached == "" {
		return nil, fetchErr
	}

	var patients []models.Patient
	if err := json.Unmarshal([]byte(cached), &patients); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	uc.Log.Info("directoryUsecase.lastGoodPatients serving cached patient list",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return &responses.PatientList{Patients: toPatientResponses(patients), Stale: true}, nil
}

func (uc *directoryUsecase) lastGoodDoctors(ctx context.Context, specialty string, fetchErr error) (*responses.DoctorList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisKeyDoctorListFormat, specialty))
	if err != nil || cached == "" {
		return nil, fetchErr
	}

	var doctors []models.Doctor
	if err := json.Unmarshal([]byte(cached), &doctors); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	uc.Log.Info("directoryUsecase.lastGoodDoctors serving cached doctor list",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(doctors)),
	)
	return &responses.DoctorList{
		Doctors:            uc.toDoctorResponses(ctx, doctors),
		NoDoctorsAvailable: len(doctors) == 0,
		Stale:              true,
	}, nil
}

func toPatientResponses(patients []models.Patient) []responses.Patient {
	result := make([]responses.Patient, len(patients))
	for i, patient := range patients {
		result[i] = responses.Patient{
			ID:       patient.ID,
			Name:     patient.Name,
			LastName: patient.LastName,
			Email:    patient.Email,
		}
	}
	return result
}

func (uc *directoryUsecase) toDoctorResponses(ctx context.Context, doctors []models.Doctor) []responses.Doctor {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	result := make([]responses.Doctor, len(doctors))
	for i, doctor := range doctors {
		photoURL := ""
		if doctor.Photo != "" {
			presigned, err := uc.PhotoStorage.PresignPhotoURL(ctx, doctor.Photo)
			if err != nil {
				// Photo resolution is cosmetic; the listing survives without it.
				uc.Log.Warn("directoryUsecase.toDoctorResponses error presigning doctor photo",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			} else {
				photoURL = presigned
			}
		}
		result[i] = responses.Doctor{
			ID:        doctor.ID,
			Name:      doctor.Name,
			LastName:  doctor.LastName,
			Specialty: doctor.Specialty,
			Phone:     doctor.Phone,
			Email:     doctor.Email,
			Photo:     doctor.Photo,
			PhotoURL:  photoURL,
			Cost:      models.AppointmentCostFor(doctor.Specialty),
		}
	}
	return result
}
