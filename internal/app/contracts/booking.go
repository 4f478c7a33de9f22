package contracts

import (
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
	"context"
)

type BookingUsecase interface {
	CreateDraft(ctx context.Context) (*responses.Booking, error)
	GetDraft(ctx context.Context, bookingID string) (*responses.Booking, error)
	UpdateDraft(ctx context.Context, bookingID string, request *requests.UpdateBooking) (*responses.Booking, error)
	SubmitDraft(ctx context.Context, bookingID string) (*responses.Booking, error)
	Pay(ctx context.Context, bookingID string) (*responses.Payment, error)
	ListTransactions(ctx context.Context, bookingID string) ([]responses.Transaction, error)
}
