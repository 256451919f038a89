package workorder

import (
	"strings"
	"time"
)

// CompletionInfo is the completion record of a work order. The two request
// flags are independent fault attribution, so both, one or neither may be set.
type CompletionInfo struct {
	CustomerRequested         bool
	FurnitureCompanyRequested bool
	DriverNotes               string
	AudioEvidenceRef          *string
	CompletedAt               time.Time
}

// RecordCompletion builds the completion record. CompletedAt defaults to now
// and the evidence reference is kept as given; whether it points at a stored
// file is the storage service's concern.
func RecordCompletion(detail CompletionDetail, now time.Time) CompletionInfo {
	info := CompletionInfo{
		CustomerRequested:         detail.CustomerRequested,
		FurnitureCompanyRequested: detail.FurnitureCompanyRequested,
		DriverNotes:               strings.TrimSpace(detail.DriverNotes),
		CompletedAt:               now,
	}
	if detail.CompletedAt != nil {
		info.CompletedAt = *detail.CompletedAt
	}
	if ref := strings.TrimSpace(detail.AudioEvidenceRef); ref != "" {
		info.AudioEvidenceRef = &ref
	}
	return info
}
