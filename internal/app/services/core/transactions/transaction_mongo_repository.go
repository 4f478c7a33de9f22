package transactions

import (
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/app/models"
	"citamed-service/internal/pkg/exceptions"
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const transactionCollection = "transactions"

var (
	transactionRepositoryInstance contracts.TransactionRepository
	onceTransactionRepository     sync.Once
)

type transactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(client *mongo.Client, dbName string) contracts.TransactionRepository {
	onceTransactionRepository.Do(func() {
		transactionRepositoryInstance = &transactionMongoRepository{
			Collection: client.Database(dbName).Collection(transactionCollection),
		}
	})
	return transactionRepositoryInstance
}

func (r *transactionMongoRepository) Insert(ctx context.Context, transaction *models.Transaction) error {
	_, err := r.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *transactionMongoRepository) FindByBookingID(ctx context.Context, bookingID string) ([]models.Transaction, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"booking_id": bookingID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, exceptions.ErrMongoDBIterateCursor(err)
	}
	return transactions, nil
}
