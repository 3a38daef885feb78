package dto

import (
	"time"

	"github.com/google/uuid"

	"atria/internal/domains/appointment/model"
	"atria/shared"
	gDto "atria/shared/dto"
	gModel "atria/shared/model"
	"atria/shared/slots"
	"atria/shared/timezone"
)

type CreateAppointmentRequest struct {
	PatientID            string     `json:"patient_id" validate:"required,uuid4"`
	ProviderID           *string    `json:"provider_id" validate:"omitempty,uuid4"`
	StartAt              time.Time  `json:"start_at" validate:"required"`
	EndAt                *time.Time `json:"end_at" validate:"omitempty"`
	Reason               string     `json:"reason" validate:"omitempty,max=2000"`
	Location             string     `json:"location" validate:"omitempty,max=255"`
	AssignedProviderName string     `json:"assigned_provider_name" validate:"omitempty,max=255"`
	BookingChannelStatus string     `json:"booking_channel_status" validate:"omitempty,max=64"`
}

func (c *CreateAppointmentRequest) ToModel(user string) model.Appointment {
	reason := c.Reason
	providerName := c.AssignedProviderName
	channelStatus := c.BookingChannelStatus

	// Legacy clients still pack the doctor and channel into the reason text.
	if providerName == "" && channelStatus == "" {
		reason, providerName, channelStatus = model.ParseLegacyReason(reason)
	}

	return model.Appointment{
		ID:                   uuid.NewString(),
		PatientID:            c.PatientID,
		ProviderID:           c.ProviderID,
		StartAt:              timezone.ToAppTime(c.StartAt),
		EndAt:                c.EndAt,
		Status:               model.StatusScheduled,
		Reason:               reason,
		Location:             c.Location,
		AssignedProviderName: providerName,
		BookingChannelStatus: channelStatus,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAppointmentRequest struct {
	Status               string     `db:"status" json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled no_show"`
	StartAt              *time.Time `db:"start_at" json:"start_at" validate:"omitempty"`
	EndAt                *time.Time `db:"end_at" json:"end_at" validate:"omitempty"`
	Reason               string     `db:"reason" json:"reason" validate:"omitempty,max=2000"`
	Location             string     `db:"location" json:"location" validate:"omitempty,max=255"`
	AssignedProviderName string     `db:"assigned_provider_name" json:"assigned_provider_name" validate:"omitempty,max=255"`
	BookingChannelStatus string     `db:"booking_channel_status" json:"booking_channel_status" validate:"omitempty,max=64"`
}

type AppointmentResponse struct {
	ID                   string     `json:"id"`
	PatientID            string     `json:"patient_id"`
	ProviderID           *string    `json:"provider_id"`
	StartAt              time.Time  `json:"start_at"`
	EndAt                *time.Time `json:"end_at"`
	Status               string     `json:"status"`
	Reason               string     `json:"reason"`
	Location             string     `json:"location"`
	AssignedProviderName string     `json:"assigned_provider_name"`
	BookingChannelStatus string     `json:"booking_channel_status"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.PatientID = model.PatientID
	r.ProviderID = model.ProviderID
	r.StartAt = model.StartAt
	r.EndAt = model.EndAt
	r.Status = model.Status
	r.Reason = model.Reason
	r.Location = model.Location
	r.AssignedProviderName = model.AssignedProviderName
	r.BookingChannelStatus = model.BookingChannelStatus
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

type AvailableSlotsResponse struct {
	Date            string       `json:"date"`
	DurationMinutes int          `json:"duration_minutes"`
	Slots           []slots.Slot `json:"slots"`
}

// AppointmentCreatedEvent is the payload published on appointment creation and
// consumed by the notification worker.
type AppointmentCreatedEvent struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	PatientEmail  string    `json:"patient_email"`
	PatientPhone  string    `json:"patient_phone"`
	ProviderName  string    `json:"provider_name"`
	StartAt       time.Time `json:"start_at"`
	Location      string    `json:"location"`
}
