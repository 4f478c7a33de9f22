package contracts

import (
	"citamed-service/internal/app/models"
	"context"
)

type DoctorClient interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error)
	SearchByName(ctx context.Context, name string) ([]models.Doctor, error)
	DeleteByName(ctx context.Context, name string) error
}
