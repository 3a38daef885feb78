package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atria/internal/domains/appointment/model"
)

func TestParseLegacyReason(t *testing.T) {
	tests := []struct {
		name         string
		reason       string
		wantClean    string
		wantProvider string
		wantChannel  string
	}{
		{
			name:      "plain reason untouched",
			reason:    "Annual checkup",
			wantClean: "Annual checkup",
		},
		{
			name:         "doctor tag extracted",
			reason:       "Follow-up [doctor: Dr. Sarah Lim]",
			wantClean:    "Follow-up",
			wantProvider: "Dr. Sarah Lim",
		},
		{
			name:        "channel tag extracted",
			reason:      "Consultation [channel: whatsapp-confirmed]",
			wantClean:   "Consultation",
			wantChannel: "whatsapp-confirmed",
		},
		{
			name:         "both tags extracted in any order",
			reason:       "[channel: walk-in] Root canal [doctor: Dr. Tan]",
			wantClean:    "Root canal",
			wantProvider: "Dr. Tan",
			wantChannel:  "walk-in",
		},
		{
			name:         "interior whitespace collapsed after stripping",
			reason:       "Cleaning   [doctor:Dr. Wong]   and polish",
			wantClean:    "Cleaning and polish",
			wantProvider: "Dr. Wong",
		},
		{
			name:      "empty reason",
			reason:    "",
			wantClean: "",
		},
		{
			name:         "tags only leaves empty reason",
			reason:       "[doctor: Dr. Lee][channel: phone]",
			wantClean:    "",
			wantProvider: "Dr. Lee",
			wantChannel:  "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, provider, channel := model.ParseLegacyReason(tt.reason)

			assert.Equal(t, tt.wantClean, clean)
			assert.Equal(t, tt.wantProvider, provider)
			assert.Equal(t, tt.wantChannel, channel)
		})
	}
}
