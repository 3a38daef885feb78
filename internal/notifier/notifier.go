package notifier

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"atria/config"
	"atria/infras/kafka"
	"atria/infras/otel"
	appointmentDto "atria/internal/domains/appointment/model/dto"
	chatModel "atria/internal/domains/chat/model"
	chatRepo "atria/internal/domains/chat/repository"
	"atria/shared/constant"
	gModel "atria/shared/model"
	"atria/shared/timezone"
)

const systemActor = "system"

// Notifier consumes appointment events and fans each one out to the patient's
// email, their WhatsApp number, and an in-app notification. Delivery failures
// are logged and swallowed: a dead mailer must never block the consumer loop.
type Notifier interface {
	Run(ctx context.Context)
}

type notifierImpl struct {
	kafka         kafka.Client
	notifications chatRepo.Notification
	cfg           *config.Config
	otel          otel.Otel
}

func New(kafkaClient kafka.Client, notifications chatRepo.Notification, cfg *config.Config, ot otel.Otel) Notifier {
	return &notifierImpl{
		kafka:         kafkaClient,
		notifications: notifications,
		cfg:           cfg,
		otel:          ot,
	}
}

func (n *notifierImpl) Run(ctx context.Context) {
	log.Info().Str("topic", constant.TopicAppointmentCreated).Msg("Starting appointment notifier")

	n.kafka.Consume(ctx, n.cfg.Kafka.ConsumerGroup, constant.TopicAppointmentCreated, func(msg kafkaGo.Message) {
		n.handleAppointmentCreated(ctx, msg)
	})
}

func (n *notifierImpl) handleAppointmentCreated(ctx context.Context, msg kafkaGo.Message) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".handleAppointmentCreated")
	defer scope.End()

	decoded, err := kafka.DecodeKafkaMessage[appointmentDto.AppointmentCreatedEvent](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode appointment created event")
		scope.TraceError(err)

		return
	}

	event, ok := decoded.Value.(appointmentDto.AppointmentCreatedEvent)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("unexpected payload for appointment created event")

		return
	}

	scope.SetAttribute("appointment_id", event.AppointmentID)

	if event.PatientEmail != "" {
		if err := n.sendEmail(event); err != nil {
			log.Error().Err(err).Str("appointmentID", event.AppointmentID).Msg("failed to send appointment email")
		}
	}

	if event.PatientPhone != "" {
		if err := n.sendWhatsApp(ctx, event); err != nil {
			log.Error().Err(err).Str("appointmentID", event.AppointmentID).Msg("failed to send appointment whatsapp message")
		}
	}

	if err := n.createInAppNotification(ctx, event); err != nil {
		log.Error().Err(err).Str("appointmentID", event.AppointmentID).Msg("failed to create in-app notification")
	}
}

func (n *notifierImpl) createInAppNotification(ctx context.Context, event appointmentDto.AppointmentCreatedEvent) error {
	now := timezone.Now()

	notification := chatModel.Notification{
		ID:     uuid.NewString(),
		UserID: event.PatientID,
		Title:  "Appointment scheduled",
		Body:   appointmentSummary(event),
		Kind:   "appointment",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  systemActor,
			ModifiedBy: systemActor,
		},
	}

	if err := n.notifications.Insert(ctx, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

func appointmentSummary(event appointmentDto.AppointmentCreatedEvent) string {
	summary := fmt.Sprintf(
		"Your appointment is scheduled for %s",
		event.StartAt.In(timezone.GetLocation()).Format("Monday, 2 January 2006 at 3:04 PM"),
	)

	if event.ProviderName != "" {
		summary += " with " + event.ProviderName
	}

	if event.Location != "" {
		summary += " at " + event.Location
	}

	return summary + "."
}
