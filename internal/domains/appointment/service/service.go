package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"atria/config"
	"atria/infras/kafka"
	"atria/infras/otel"
	"atria/internal/domains/appointment/model"
	"atria/internal/domains/appointment/model/dto"
	"atria/internal/domains/appointment/repository"
	patientModel "atria/internal/domains/patient/model"
	patientRepo "atria/internal/domains/patient/repository"
	providerModel "atria/internal/domains/provider/model"
	providerRepo "atria/internal/domains/provider/repository"
	"atria/shared"
	"atria/shared/cache"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/failure"
	"atria/shared/slots"
	"atria/shared/timezone"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:get_all"
	cacheCountAppointment  = "appointment:count"
)

type Appointment interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) error
	Cancel(ctx context.Context, id string) error
	AvailableSlots(ctx context.Context, date string, durationMinutes int) (dto.AvailableSlotsResponse, error)
}

type serviceImpl struct {
	repo      repository.Appointment
	patients  patientRepo.Patient
	providers providerRepo.Provider
	cfg       *config.Config
	cache     cache.RedisCache
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Appointment,
	patients patientRepo.Patient,
	providers providerRepo.Provider,
	cfg *config.Config,
	redisCache cache.RedisCache,
	kafkaClient kafka.Client,
	ot otel.Otel,
) Appointment {
	return &serviceImpl{
		repo:      repo,
		patients:  patients,
		providers: providers,
		cfg:       cfg,
		cache:     redisCache,
		kafka:     kafkaClient,
		otel:      ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	patient, err := s.patients.Get(ctx, shared.FilterByID(req.PatientID, patientModel.FieldID, patientModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get patient")

		return res, fmt.Errorf("failed to get patient: %w", err)
	}

	if patient.ID == "" {
		return res, failure.NotFound("patient not found") // nolint:wrapcheck
	}

	if req.ProviderID != nil {
		exist, err := s.providers.Exist(ctx, shared.FilterByID(*req.ProviderID, providerModel.FieldID, providerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if provider exists")

			return res, fmt.Errorf("failed to check if provider exists: %w", err)
		}

		if !exist {
			return res, failure.NotFound("provider not found") // nolint:wrapcheck
		}
	}

	appointment := req.ToModel(user)

	if err = s.repo.Insert(ctx, appointment); err != nil {
		log.Error().Err(err).Msg("failed to create appointment")

		return res, fmt.Errorf("failed to create appointment: %w", err)
	}

	// Confirmation delivery is fire-and-forget: the appointment is committed,
	// a lost notification never rolls it back.
	go s.publishCreated(context.WithoutCancel(ctx), appointment, patient)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
	}()

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, appointment model.Appointment, patient patientModel.Patient) {
	event := dto.AppointmentCreatedEvent{
		AppointmentID: appointment.ID,
		PatientID:     patient.ID,
		PatientName:   patient.FullName,
		PatientEmail:  patient.Email,
		PatientPhone:  patient.Phone,
		ProviderName:  appointment.AssignedProviderName,
		StartAt:       appointment.StartAt,
		Location:      appointment.Location,
	}

	err := s.kafka.SendMessages(ctx, constant.TopicAppointmentCreated, kafka.Message{
		Key:   appointment.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("appointment_id", appointment.ID).Msg("failed to publish appointment created event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == "" {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateAppointmentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if appointment exists")

		return fmt.Errorf("failed to check if appointment exists: %w", err)
	}

	if !exist {
		log.Error().Msg("appointment not found")

		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update appointment")

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
	}()

	return nil
}

// Cancel transitions the appointment to cancelled. Cancelled rows stay in the
// table and no longer block slots.
func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(nil)

	return s.Update(ctx, dto.UpdateAppointmentRequest{Status: model.StatusCancelled}, id)
}

// AvailableSlots computes the bookable start times for a day: every
// non-cancelled appointment on that day becomes a busy interval fed to the
// slot calculator.
func (s *serviceImpl) AvailableSlots(ctx context.Context, date string, durationMinutes int) (res dto.AvailableSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	if date == "" {
		return dto.AvailableSlotsResponse{
			DurationMinutes: durationMinutes,
			Slots:           []slots.Slot{},
		}, nil
	}

	day, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"date":     date,
		"duration": durationMinutes,
	})

	existing, err := s.dayAppointments(ctx, day)
	if err != nil {
		return res, err
	}

	busy := make([]slots.Busy, len(existing))
	for i, appointment := range existing {
		busy[i] = slots.Busy{
			Start: appointment.StartAt,
			End:   appointment.EndAt,
		}
	}

	return dto.AvailableSlotsResponse{
		Date:            date,
		DurationMinutes: durationMinutes,
		Slots:           slots.AvailableSlots(day, durationMinutes, busy),
	}, nil
}

func (s *serviceImpl) dayAppointments(ctx context.Context, day time.Time) ([]model.Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, timezone.GetLocation())
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "start_at_from",
				Field:    model.FieldStartAt,
				Value:    dayStart,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "start_at_to",
				Field:    model.FieldStartAt,
				Value:    dayEnd,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusCancelled,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldStartAt,
		SortDir: gDto.SortDirAsc,
	}

	appointments, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get day appointments")

		return nil, fmt.Errorf("failed to get day appointments: %w", err)
	}

	return appointments, nil
}
