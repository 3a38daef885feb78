package model

import "atria/shared/model"

const (
	CategoryTableName  = "service_categories"
	CategoryEntityName = "service_category"

	ServiceTableName  = "services"
	ServiceEntityName = "service"

	GroupTableName  = "service_groups"
	GroupEntityName = "service_group"

	GroupServiceTableName  = "service_group_services"
	GroupServiceEntityName = "service_group_service"
)

const (
	FieldID              = "id"
	FieldActive          = "active"
	FieldName            = "name"
	FieldCategoryID      = "category_id"
	FieldGroupID         = "group_id"
	FieldServiceID       = "service_id"
	FieldUnitPrice       = "unit_price"
	FieldDiscountPercent = "discount_percent"
)

type ServiceCategory struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	model.Metadata
}

type Service struct {
	ID              string  `db:"id"`
	CategoryID      string  `db:"category_id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	UnitPrice       float64 `db:"unit_price"`
	DurationMinutes int     `db:"duration_minutes"`
	Active          bool    `db:"active"`
	model.Metadata
}

type ServiceGroup struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	DiscountPercent float64 `db:"discount_percent"`
	model.Metadata
}

// ServiceGroupService links a service into a group. Quantity and
// DiscountPercent are optional overrides: a nil quantity counts as one, a nil
// discount falls back to the group default.
type ServiceGroupService struct {
	ID              string   `db:"id"`
	GroupID         string   `db:"group_id"`
	ServiceID       string   `db:"service_id"`
	Quantity        *int     `db:"quantity"`
	DiscountPercent *float64 `db:"discount_percent"`
	model.Metadata
}
