package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atria/config"
	kafkaMocks "atria/infras/kafka/mocks"
	"atria/infras/otel/mocks"
	appointmentMocks "atria/internal/domains/appointment/mocks"
	"atria/internal/domains/appointment/model"
	"atria/internal/domains/appointment/model/dto"
	"atria/internal/domains/appointment/service"
	patientMocks "atria/internal/domains/patient/mocks"
	patientModel "atria/internal/domains/patient/model"
	providerMocks "atria/internal/domains/provider/mocks"
	cacheMocks "atria/shared/cache/mocks"
	"atria/shared/failure"
	"atria/shared/timezone"
)

type appointmentMockSet struct {
	repo      *appointmentMocks.MockAppointment
	patients  *patientMocks.MockPatient
	providers *providerMocks.MockProvider
	cache     *cacheMocks.MockRedisCache
	kafka     *kafkaMocks.MockClient
}

func newAppointmentService(ctrl *gomock.Controller) (service.Appointment, appointmentMockSet) {
	set := appointmentMockSet{
		repo:      appointmentMocks.NewMockAppointment(ctrl),
		patients:  patientMocks.NewMockPatient(ctrl),
		providers: providerMocks.NewMockProvider(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		kafka:     kafkaMocks.NewMockClient(ctrl),
	}

	svc := service.New(set.repo, set.patients, set.providers, &config.Config{}, set.cache, set.kafka, mocks.NewOtel())

	return svc, set
}

func stringPtr(s string) *string {
	return &s
}

func TestAppointmentService_Create(t *testing.T) {
	validPatient := patientModel.Patient{
		ID:       "a6c1f9a0-0000-4000-8000-000000000001",
		FullName: "Jane Roe",
		Email:    "jane@example.com",
		Phone:    "+6281234567890",
	}

	startAt := timezone.Now().Add(24 * time.Hour)

	tests := []struct {
		name      string
		req       dto.CreateAppointmentRequest
		setupMock func(set appointmentMockSet)
		wantErr   bool
	}{
		{
			name: "successful create without provider",
			req: dto.CreateAppointmentRequest{
				PatientID: validPatient.ID,
				StartAt:   startAt,
				Reason:    "Annual checkup",
			},
			setupMock: func(set appointmentMockSet) {
				set.patients.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validPatient, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "successful create with provider",
			req: dto.CreateAppointmentRequest{
				PatientID:  validPatient.ID,
				ProviderID: stringPtr("b6c1f9a0-0000-4000-8000-000000000002"),
				StartAt:    startAt,
			},
			setupMock: func(set appointmentMockSet) {
				set.patients.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validPatient, nil)

				set.providers.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "patient not found",
			req: dto.CreateAppointmentRequest{
				PatientID: "a6c1f9a0-0000-4000-8000-00000000dead",
				StartAt:   startAt,
			},
			setupMock: func(set appointmentMockSet) {
				set.patients.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(patientModel.Patient{}, nil)
			},
			wantErr: true,
		},
		{
			name: "provider not found",
			req: dto.CreateAppointmentRequest{
				PatientID:  validPatient.ID,
				ProviderID: stringPtr("b6c1f9a0-0000-4000-8000-00000000dead"),
				StartAt:    startAt,
			},
			setupMock: func(set appointmentMockSet) {
				set.patients.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validPatient, nil)

				set.providers.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "insert failure",
			req: dto.CreateAppointmentRequest{
				PatientID: validPatient.ID,
				StartAt:   startAt,
			},
			setupMock: func(set appointmentMockSet) {
				set.patients.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validPatient, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newAppointmentService(ctrl)
			tt.setupMock(set)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, model.StatusScheduled, res.Status)
		})
	}
}

func TestAppointmentService_Create_StripsLegacyReasonTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newAppointmentService(ctrl)

	patient := patientModel.Patient{ID: "a6c1f9a0-0000-4000-8000-000000000001", FullName: "Jane Roe"}

	set.patients.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(patient, nil)

	var inserted model.Appointment

	set.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, appointment model.Appointment) error {
			inserted = appointment

			return nil
		})

	set.kafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	set.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	_, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{
		PatientID: patient.ID,
		StartAt:   timezone.Now(),
		Reason:    "Follow-up [doctor: Dr. Tan] [channel: whatsapp]",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Follow-up", inserted.Reason)
	assert.Equal(t, "Dr. Tan", inserted.AssignedProviderName)
	assert.Equal(t, "whatsapp", inserted.BookingChannelStatus)
}

func TestAppointmentService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newAppointmentService(ctrl)

	set.repo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	set.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

			return nil
		})

	set.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	err := svc.Cancel(context.Background(), "c6c1f9a0-0000-4000-8000-000000000003")

	assert.NoError(t, err)
}

func TestAppointmentService_Cancel_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newAppointmentService(ctrl)

	set.repo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.Cancel(context.Background(), "c6c1f9a0-0000-4000-8000-00000000dead")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestAppointmentService_Update_EmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAppointmentService(ctrl)

	err := svc.Update(context.Background(), dto.UpdateAppointmentRequest{}, "c6c1f9a0-0000-4000-8000-000000000003")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestAppointmentService_AvailableSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newAppointmentService(ctrl)

	loc := timezone.GetLocation()
	booked := model.Appointment{
		ID:      "d6c1f9a0-0000-4000-8000-000000000004",
		StartAt: time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		Status:  model.StatusScheduled,
	}
	end := time.Date(2025, 3, 10, 9, 30, 0, 0, loc)
	booked.EndAt = &end

	set.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Appointment{booked}, nil)

	res, err := svc.AvailableSlots(context.Background(), "2025-03-10", 30)

	assert.NoError(t, err)
	assert.Equal(t, "2025-03-10", res.Date)
	assert.Equal(t, 30, res.DurationMinutes)
	assert.NotEmpty(t, res.Slots)

	for _, slot := range res.Slots {
		assert.NotEqual(t, "09:00", slot.Value)
		assert.NotEqual(t, "09:15", slot.Value)
	}

	assert.Equal(t, "08:00", res.Slots[0].Value)
}

func TestAppointmentService_AvailableSlots_BadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAppointmentService(ctrl)

	_, err := svc.AvailableSlots(context.Background(), "10-03-2025", 30)

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestAppointmentService_AvailableSlots_EmptyDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAppointmentService(ctrl)

	res, err := svc.AvailableSlots(context.Background(), "", 30)

	assert.NoError(t, err)
	assert.Empty(t, res.Slots)
}
