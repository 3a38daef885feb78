package dto_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"atria/shared/constant"
	"atria/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "all parameters set",
			query:          "page=2&limit=25&sort_by=start_at&sort_dir=desc",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 2, Limit: 25, SortBy: "start_at", SortDir: dto.SortDirDesc},
		},
		{
			name:           "defaults applied when missing",
			query:          "",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "no defaults when not requested",
			query:          "",
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "invalid values ignored",
			query:          "page=abc&limit=-5&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/v1/appointments?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(r, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "equality",
			filter: dto.Filter{
				Field:    "status",
				Value:    "scheduled",
				Operator: dto.FilterOperatorEq,
				Table:    "appointments",
			},
			wantClause: "appointments.status = :status",
			wantArgs:   map[string]any{"status": "scheduled"},
		},
		{
			name: "like wraps value in wildcards",
			filter: dto.Filter{
				Field:    "full_name",
				Value:    "jane",
				Operator: dto.FilterOperatorLike,
				Table:    "patients",
			},
			wantClause: "LOWER(patients.full_name) LIKE LOWER(:full_name) ",
			wantArgs:   map[string]any{"full_name": "%jane%"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "start_at_from",
				Field:    "start_at",
				Value:    "2025-03-10",
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "appointments",
			},
			wantClause: "appointments.start_at >= :start_at_from",
			wantArgs:   map[string]any{"start_at_from": "2025-03-10"},
		},
		{
			name: "not equal",
			filter: dto.Filter{
				Field:    "status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
				Table:    "appointments",
			},
			wantClause: "appointments.status != :status",
			wantArgs:   map[string]any{"status": "cancelled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for k, v := range tt.wantArgs {
				if args[k] != v {
					t.Errorf("expected arg %s=%v, got %v", k, v, args[k])
				}
			}
		})
	}
}

func TestFilter_GetWhereClause_InExpandsSlice(t *testing.T) {
	filter := dto.Filter{
		Field:    "id",
		Value:    []string{"id-1", "id-2"},
		Operator: dto.FilterOperatorIn,
		Table:    "services",
	}

	clause, args := filter.GetWhereClause()

	if !strings.Contains(clause, "services.id IN (:id_0, :id_1)") {
		t.Errorf("unexpected clause: %q", clause)
	}

	if args["id_0"] != "id-1" || args["id_1"] != "id-2" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "patient_id",
				Value:    "id-1",
				Operator: dto.FilterOperatorEq,
				Table:    "appointments",
			},
			dto.Filter{
				Field:    "status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
				Table:    "appointments",
			},
		},
	}

	clause, args := group.GetWhereClause()

	if clause != "(appointments.patient_id = :patient_id AND appointments.status != :status)" {
		t.Errorf("unexpected clause: %q", clause)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	clause, args := group.GetWhereClause()

	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestFilterGroup_DefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "a", Value: 1, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "b", Value: 2, Operator: dto.FilterOperatorEq},
		},
	}

	clause, _ := group.GetWhereClause()

	if !strings.Contains(clause, " AND ") {
		t.Errorf("expected AND operator by default, got %q", clause)
	}
}
