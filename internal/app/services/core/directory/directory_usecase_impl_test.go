package directory

import (
	"citamed-service/internal/app/models"
	"citamed-service/internal/pkg/constvars"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	data map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: make(map[string]string)}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := f.data[key]; exists {
		return false, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	f.data[key] = string(raw)
	return true, nil
}

type fakePatientClient struct {
	patients []models.Patient
	err      error
	deleted  []string
}

func (f *fakePatientClient) FindAll(ctx context.Context) ([]models.Patient, error) {
	return f.patients, f.err
}

func (f *fakePatientClient) SearchByName(ctx context.Context, name string) ([]models.Patient, error) {
	return f.patients, f.err
}

func (f *fakePatientClient) DeleteByName(ctx context.Context, name string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, name)
	return nil
}

type fakeDoctorClient struct {
	doctors []models.Doctor
	err     error
}

func (f *fakeDoctorClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return f.doctors, f.err
}

func (f *fakeDoctorClient) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	var filtered []models.Doctor
	for _, doctor := range f.doctors {
		if doctor.Specialty == specialty {
			filtered = append(filtered, doctor)
		}
	}
	return filtered, f.err
}

func (f *fakeDoctorClient) SearchByName(ctx context.Context, name string) ([]models.Doctor, error) {
	return f.doctors, f.err
}

func (f *fakeDoctorClient) DeleteByName(ctx context.Context, name string) error {
	return f.err
}

type fakePhotoStorage struct {
	err error
}

func (f *fakePhotoStorage) PresignPhotoURL(ctx context.Context, objectName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/" + objectName, nil
}

func newDirectoryUsecaseForTest(patientClient *fakePatientClient, doctorClient *fakeDoctorClient, redis *fakeRedisRepository, photos *fakePhotoStorage) *directoryUsecase {
	return &directoryUsecase{
		PatientClient:   patientClient,
		DoctorClient:    doctorClient,
		RedisRepository: redis,
		PhotoStorage:    photos,
		Log:             zap.NewNop(),
	}
}

func TestListPatients(t *testing.T) {
	t.Run("serves and caches the fetched list", func(t *testing.T) {
		redis := newFakeRedisRepository()
		uc := newDirectoryUsecaseForTest(
			&fakePatientClient{patients: []models.Patient{{ID: "p1", Name: "Ana", LastName: "García"}}},
			&fakeDoctorClient{},
			redis,
			&fakePhotoStorage{},
		)

		list, err := uc.ListPatients(context.Background())
		require.NoError(t, err)
		require.Len(t, list.Patients, 1)
		assert.False(t, list.Stale)
		assert.NotEmpty(t, redis.data[constvars.RedisKeyPatientListCache])
	})

	t.Run("falls back to last good list when backend is down", func(t *testing.T) {
		redis := newFakeRedisRepository()
		patientClient := &fakePatientClient{patients: []models.Patient{{ID: "p1", Name: "Ana", LastName: "García"}}}
		uc := newDirectoryUsecaseForTest(patientClient, &fakeDoctorClient{}, redis, &fakePhotoStorage{})

		_, err := uc.ListPatients(context.Background())
		require.NoError(t, err)

		patientClient.err = fmt.Errorf("connection refused")
		list, err := uc.ListPatients(context.Background())
		require.NoError(t, err)
		require.Len(t, list.Patients, 1)
		assert.True(t, list.Stale)
	})

	t.Run("propagates error when no cache exists", func(t *testing.T) {
		uc := newDirectoryUsecaseForTest(
			&fakePatientClient{err: fmt.Errorf("connection refused")},
			&fakeDoctorClient{},
			newFakeRedisRepository(),
			&fakePhotoStorage{},
		)

		_, err := uc.ListPatients(context.Background())
		require.Error(t, err)
	})
}

func TestListDoctors(t *testing.T) {
	doctors := []models.Doctor{
		{ID: "d1", Name: "Luis", LastName: "Pérez", Specialty: "Dermatology", Email: "luis@clinic.com", Photo: "luis.jpg"},
		{ID: "d2", Name: "Eva", LastName: "Mora", Specialty: "Cardiology", Email: "eva@clinic.com"},
	}

	t.Run("attaches cost and presigned photo", func(t *testing.T) {
		uc := newDirectoryUsecaseForTest(&fakePatientClient{}, &fakeDoctorClient{doctors: doctors}, newFakeRedisRepository(), &fakePhotoStorage{})

		list, err := uc.ListDoctors(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, list.Doctors, 2)
		assert.False(t, list.NoDoctorsAvailable)

		assert.Equal(t, 50, list.Doctors[0].Cost)
		assert.Equal(t, "https://cdn.example.com/luis.jpg", list.Doctors[0].PhotoURL)
		assert.Equal(t, 70, list.Doctors[1].Cost)
		assert.Empty(t, list.Doctors[1].PhotoURL)
	})

	t.Run("filters by specialty", func(t *testing.T) {
		uc := newDirectoryUsecaseForTest(&fakePatientClient{}, &fakeDoctorClient{doctors: doctors}, newFakeRedisRepository(), &fakePhotoStorage{})

		list, err := uc.ListDoctors(context.Background(), "Cardiology")
		require.NoError(t, err)
		require.Len(t, list.Doctors, 1)
		assert.Equal(t, "eva@clinic.com", list.Doctors[0].Email)
	})

	t.Run("flags an empty specialty result", func(t *testing.T) {
		uc := newDirectoryUsecaseForTest(&fakePatientClient{}, &fakeDoctorClient{doctors: doctors}, newFakeRedisRepository(), &fakePhotoStorage{})

		list, err := uc.ListDoctors(context.Background(), "Pediatrics")
		require.NoError(t, err)
		assert.Empty(t, list.Doctors)
		assert.True(t, list.NoDoctorsAvailable)
	})

	t.Run("photo presign failure is not fatal", func(t *testing.T) {
		uc := newDirectoryUsecaseForTest(&fakePatientClient{}, &fakeDoctorClient{doctors: doctors}, newFakeRedisRepository(), &fakePhotoStorage{err: fmt.Errorf("minio down")})

		list, err := uc.ListDoctors(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, list.Doctors[0].PhotoURL)
	})
}

func TestRemovePatient(t *testing.T) {
	redis := newFakeRedisRepository()
	patientClient := &fakePatientClient{patients: []models.Patient{{ID: "p1", Name: "Ana"}}}
	uc := newDirectoryUsecaseForTest(patientClient, &fakeDoctorClient{}, redis, &fakePhotoStorage{})

	_, err := uc.ListPatients(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, redis.data[constvars.RedisKeyPatientListCache])

	require.NoError(t, uc.RemovePatient(context.Background(), "Ana"))
	assert.Equal(t, []string{"Ana"}, patientClient.deleted)
	assert.Empty(t, redis.data[constvars.RedisKeyPatientListCache], "cache invalidated after delete")
}
