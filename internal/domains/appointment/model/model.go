package model

import (
	"time"

	"atria/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID                   = "id"
	FieldPatientID            = "patient_id"
	FieldProviderID           = "provider_id"
	FieldStartAt              = "start_at"
	FieldEndAt                = "end_at"
	FieldStatus               = "status"
	FieldReason               = "reason"
	FieldLocation             = "location"
	FieldAssignedProviderName = "assigned_provider_name"
	FieldBookingChannelStatus = "booking_channel_status"
)

const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Appointment is never physically deleted: cancellation is a status transition
// so the history stays intact for the day's slot computation and reporting.
type Appointment struct {
	ID                   string     `db:"id"`
	PatientID            string     `db:"patient_id"`
	ProviderID           *string    `db:"provider_id"`
	StartAt              time.Time  `db:"start_at"`
	EndAt                *time.Time `db:"end_at"`
	Status               string     `db:"status"`
	Reason               string     `db:"reason"`
	Location             string     `db:"location"`
	AssignedProviderName string     `db:"assigned_provider_name"`
	BookingChannelStatus string     `db:"booking_channel_status"`
	model.Metadata
}
