package contracts

import (
	"citamed-service/internal/pkg/dto/responses"
	"context"
)

type DirectoryUsecase interface {
	ListPatients(ctx context.Context) (*responses.PatientList, error)
	SearchPatients(ctx context.Context, name string) (*responses.PatientList, error)
	RemovePatient(ctx context.Context, name string) error
	ListDoctors(ctx context.Context, specialty string) (*responses.DoctorList, error)
	SearchDoctors(ctx context.Context, name string) (*responses.DoctorList, error)
	RemoveDoctor(ctx context.Context, name string) error
}
