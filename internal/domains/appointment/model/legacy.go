package model

import (
	"regexp"
	"strings"
)

var (
	legacyDoctorTag  = regexp.MustCompile(`\[doctor:\s*([^\]]+)\]`)
	legacyChannelTag = regexp.MustCompile(`\[channel:\s*([^\]]+)\]`)
)

// ParseLegacyReason splits the bracket tags out of a legacy reason string.
// Older records packed the assigned doctor and the booking-channel status into
// the free-text reason as "[doctor: X]" and "[channel: Y]"; both now live in
// dedicated columns, so imports strip the tags and return the clean reason.
func ParseLegacyReason(reason string) (clean, providerName, channelStatus string) {
	clean = reason

	if match := legacyDoctorTag.FindStringSubmatch(clean); match != nil {
		providerName = strings.TrimSpace(match[1])
		clean = legacyDoctorTag.ReplaceAllString(clean, "")
	}

	if match := legacyChannelTag.FindStringSubmatch(clean); match != nil {
		channelStatus = strings.TrimSpace(match[1])
		clean = legacyChannelTag.ReplaceAllString(clean, "")
	}

	return strings.TrimSpace(strings.Join(strings.Fields(clean), " ")), providerName, channelStatus
}
