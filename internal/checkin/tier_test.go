package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		want        Tier
	}{
		{"empty day", 0, 0, TierNoTasks},
		{"everything done", 3, 3, TierComplete},
		{"single task done", 1, 1, TierComplete},
		{"ratio exactly 0.7 is near-complete", 7, 10, TierNearComplete},
		{"just below 0.7", 6, 10, TierPartial},
		{"some effort", 1, 5, TierPartial},
		{"nothing done", 0, 5, TierEncouragement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(tt.done, tt.total))
		})
	}
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "near-complete", TierNearComplete.String())
	assert.Equal(t, "unknown", Tier(99).String())
}
