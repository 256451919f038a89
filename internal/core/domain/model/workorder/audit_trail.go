package workorder

import (
	"fmt"
	"strings"

	"deliverytracker/internal/core/domain/model/kernel"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// AppendAuditEntry returns existing with one more line
// "<tag> (<effective date>): <detail>". The separator newline is omitted when
// existing is empty, and line breaks inside detail become spaces so every
// entry stays on its own line. Earlier entries are never modified.
func AppendAuditEntry(existing string, tag ActionTag, effective kernel.Date, detail string) string {
	entry := fmt.Sprintf("%s (%s): %s", tag, effective, strings.TrimSpace(lineBreaks.Replace(detail)))
	if existing == "" {
		return entry
	}
	return existing + "\n" + entry
}

// AuditEntries splits a trail produced by AppendAuditEntry into its entries.
func AuditEntries(notes string) []string {
	if notes == "" {
		return nil
	}
	return strings.Split(notes, "\n")
}
