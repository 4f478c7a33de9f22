package notifications

import (
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
)

// BookingConfirmedMessage is the payload published to the notification queue
// once a booking is confirmed. Title and Body carry the rendered display text;
// the structured fields let a downstream worker build its own.
type BookingConfirmedMessage struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func newBookingConfirmedMessage(patientName, doctorName, date, timeOfDay string) BookingConfirmedMessage {
	return BookingConfirmedMessage{
		Title:       constvars.NotificationBookedTitle,
		Body:        fmt.Sprintf(constvars.NotificationBookedBodyFormat, patientName, doctorName, date, timeOfDay),
		PatientName: patientName,
		DoctorName:  doctorName,
		Date:        date,
		Time:        timeOfDay,
	}
}

type rabbitMQNotificationService struct {
	Channel   *amqp.Channel
	QueueName string
	Log       *zap.Logger
	mu        sync.Mutex
}

func NewRabbitMQNotificationService(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.NotificationService, error) {
	var initErr error
	onceNotificationService.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = ch.QueueDeclare(
			queueName,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			initErr = err
			return
		}

		notificationServiceInstance = &rabbitMQNotificationService{
			Channel:   ch,
			QueueName: queueName,
			Log:       logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return notificationServiceInstance, nil
}

func (s *rabbitMQNotificationService) PublishBookingConfirmed(ctx context.Context, patientName, doctorName, date, timeOfDay string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("rabbitMQNotificationService.PublishBookingConfirmed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.QueueName),
	)

	body, err := json.Marshal(newBookingConfirmedMessage(patientName, doctorName, date, timeOfDay))
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.NotificationPublishMimeType,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.Channel.PublishWithContext(ctx, "", s.QueueName, false, false, msg); err != nil {
		s.Log.Error("rabbitMQNotificationService.PublishBookingConfirmed error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.QueueName)
	}

	s.Log.Info("rabbitMQNotificationService.PublishBookingConfirmed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.QueueName),
	)
	return nil
}
