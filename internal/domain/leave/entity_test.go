package leave

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, DurationDays(day(10), day(10)))
	assert.Equal(t, 2, DurationDays(day(10), day(11)))
	assert.Equal(t, 5, DurationDays(day(10), day(14)))
}

func TestAuditAnnotation(t *testing.T) {
	at := time.Date(2026, time.March, 10, 15, 4, 5, 0, time.UTC)

	got := AuditAnnotation("Appr", "emp-1", at)
	assert.Equal(t, "Appr by emp-1 2026-03-10", got)
}

func TestAuditAnnotation_Truncated(t *testing.T) {
	at := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	longID := strings.Repeat("a", 80)

	got := AuditAnnotation("Appr", longID, at)
	assert.Len(t, got, 50)
	assert.Equal(t, "Appr by "+longID[:42], got)
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Approved", "Rejected", "Finalized"} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("Cancelled"))
	assert.False(t, IsValidStatus(""))
}

func TestAttachmentKey(t *testing.T) {
	assert.Equal(t, "leave/leave_req-1_medical.pdf", AttachmentKey("req-1", "medical.pdf"))
}
