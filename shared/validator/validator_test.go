package validator_test

import (
	"strings"
	"testing"

	"atria/shared/validator"
)

type createRequest struct {
	PatientID string `json:"patient_id" validate:"required,uuid4"`
	Reason    string `json:"reason" validate:"omitempty,max=10"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"patient_id": "a6c1f9a0-0000-4000-8000-000000000001", "reason": "checkup"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"reason": "checkup"}`,
			wantErr: true,
		},
		{
			name:    "invalid uuid",
			body:    `{"patient_id": "not-a-uuid"}`,
			wantErr: true,
		},
		{
			name:    "field exceeds max",
			body:    `{"patient_id": "a6c1f9a0-0000-4000-8000-000000000001", "reason": "this is far too long"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"patient_id": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := createRequest{PatientID: "a6c1f9a0-0000-4000-8000-000000000001"}
	if err := validator.ValidateStruct(&valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	invalid := createRequest{}
	if err := validator.ValidateStruct(&invalid); err == nil {
		t.Error("expected an error for missing patient_id")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2025-03", "required"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected an error for empty required var")
	}
}
