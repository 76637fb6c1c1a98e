package sla

import (
	"testing"
	"time"

	"servicedesk-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestDueAt(t *testing.T) {
	createdAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		priority models.TicketPriority
		want     time.Duration
	}{
		{"critical is one hour", models.TicketPriorityCritical, 1 * time.Hour},
		{"high is four hours", models.TicketPriorityHigh, 4 * time.Hour},
		{"medium is one day", models.TicketPriorityMedium, 24 * time.Hour},
		{"low is two days", models.TicketPriorityLow, 48 * time.Hour},
		{"unrecognized defaults to medium", models.TicketPriority("urgent"), 24 * time.Hour},
		{"empty defaults to medium", models.TicketPriority(""), 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, createdAt.Add(tt.want), DueAt(tt.priority, createdAt))
		})
	}
}

func TestComputeRemaining_NotBreached(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	dueAt := now.Add(3*time.Hour + 25*time.Minute)

	r := ComputeRemaining(dueAt, now)

	assert.False(t, r.Breached)
	assert.Equal(t, 3, r.Hours)
	assert.Equal(t, 25, r.Minutes)
}

func TestComputeRemaining_Breached(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	dueAt := now.Add(-(26*time.Hour + 5*time.Minute))

	r := ComputeRemaining(dueAt, now)

	assert.True(t, r.Breached)
	assert.Equal(t, 26, r.Hours)
	assert.Equal(t, 5, r.Minutes)
}

func TestComputeRemaining_ExactlyDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	r := ComputeRemaining(now, now)

	assert.False(t, r.Breached)
	assert.Equal(t, 0, r.Hours)
	assert.Equal(t, 0, r.Minutes)
}
