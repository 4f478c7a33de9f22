package contracts

import (
	"citamed-service/internal/app/models"
	"context"
)

type PatientClient interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	SearchByName(ctx context.Context, name string) ([]models.Patient, error)
	DeleteByName(ctx context.Context, name string) error
}
