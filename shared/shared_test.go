package shared_test

import (
	"testing"
	"time"

	"atria/shared"
	"atria/shared/constant"
	"atria/shared/dto"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "yes",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns one page",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns one page",
			total:    25,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    20,
			limit:    10,
			expected: 2,
		},
		{
			name:     "partial last page rounds up",
			total:    21,
			limit:    10,
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Status   string     `db:"status"`
		StartAt  *time.Time `db:"start_at"`
		Internal string
	}

	startAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	fields := shared.TransformFields(updateRequest{
		Status:   "confirmed",
		StartAt:  &startAt,
		Internal: "ignored",
	}, "user-1")

	if fields["status"] != "confirmed" {
		t.Errorf("expected status to be set, got %v", fields["status"])
	}

	if fields["start_at"] == nil {
		t.Error("expected start_at to be set")
	}

	if _, ok := fields["Internal"]; ok {
		t.Error("untagged fields must not be included")
	}

	if fields[constant.FieldModifiedBy] != "user-1" {
		t.Errorf("expected modified_by stamp, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at stamp")
	}
}

func TestTransformFields_SkipsZeroValues(t *testing.T) {
	type updateRequest struct {
		Status string `db:"status"`
		Reason string `db:"reason"`
	}

	fields := shared.TransformFields(updateRequest{Status: "cancelled"}, "user-1")

	if _, ok := fields["reason"]; ok {
		t.Error("zero-value fields must not be included")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("id-1", "id", "appointments")

	if len(filter.Filters) != 1 {
		t.Fatalf("expected one filter, got %d", len(filter.Filters))
	}

	f, ok := filter.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected a dto.Filter")
	}

	if f.Field != "id" || f.Value != "id-1" || f.Table != "appointments" || f.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", f)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("appointment:get", "id-1"); got != "appointment:get:id-1" {
		t.Errorf("unexpected cache key: %s", got)
	}

	if got := shared.BuildCacheKey("appointment:get_all"); got != "appointment:get_all" {
		t.Errorf("unexpected cache key: %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "start_at"}
	filter := shared.FilterByID("id-1", "id", "appointments")

	first := shared.BuildCacheKeyWithQuery("appointment:get_all", params, filter)
	second := shared.BuildCacheKeyWithQuery("appointment:get_all", params, filter)

	if first != second {
		t.Errorf("cache key must be stable: %s != %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("appointment:get_all", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == other {
		t.Error("distinct queries must produce distinct cache keys")
	}
}
