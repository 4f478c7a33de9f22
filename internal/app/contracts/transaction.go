package contracts

import (
	"citamed-service/internal/app/models"
	"context"
)

type TransactionRepository interface {
	Insert(ctx context.Context, transaction *models.Transaction) error
	FindByBookingID(ctx context.Context, bookingID string) ([]models.Transaction, error)
}
