package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeadlinePassed(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     bool
	}{
		{"yesterday", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), true},
		{"same day later hour", time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC), false},
		{"same day earlier hour", time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC), false},
		{"tomorrow", time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), false},
		{"long past", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := &JobPosting{Deadline: tt.deadline}
			assert.Equal(t, tt.want, posting.DeadlinePassed(today))
		})
	}
}

func TestAcceptsApplications(t *testing.T) {
	assert.True(t, (&JobPosting{Status: PostingStatusActive}).AcceptsApplications())
	assert.True(t, (&JobPosting{Status: PostingStatusDraft}).AcceptsApplications())
	assert.False(t, (&JobPosting{Status: PostingStatusClosed}).AcceptsApplications())
	assert.False(t, (&JobPosting{Status: PostingStatusExpired}).AcceptsApplications())
}

func TestAdvertisementStatusAt(t *testing.T) {
	ad := &Advertisement{
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, AdStatusWaiting, ad.StatusAt(time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, AdStatusRunning, ad.StatusAt(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, AdStatusRunning, ad.StatusAt(time.Date(2026, 4, 15, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, AdStatusRunning, ad.StatusAt(time.Date(2026, 4, 30, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, AdStatusClosed, ad.StatusAt(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestValidApplicationStatus(t *testing.T) {
	for _, status := range []ApplicationStatus{
		ApplicationStatusPending,
		ApplicationStatusReviewing,
		ApplicationStatusShortlisted,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
		ApplicationStatusWithdrawn,
	} {
		assert.True(t, ValidApplicationStatus(status), string(status))
	}
	assert.False(t, ValidApplicationStatus("archived"))
	assert.False(t, ValidApplicationStatus(""))
}

func TestValidRole(t *testing.T) {
	for _, role := range []UserRole{RoleAdmin, RoleEmployee, RoleJobSeeker, RoleJobOffer} {
		assert.True(t, ValidRole(role), string(role))
	}
	assert.False(t, ValidRole("superuser"))
}
