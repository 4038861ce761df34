package ai

import (
	"testing"

	"github.com/udisondev/nightveil/internal/geom"
)

func TestEnableDebugLogging(t *testing.T) {
	t.Cleanup(func() { EnableDebugLogging(false) })

	tests := []struct {
		name    string
		enabled bool
	}{
		{"enable", true},
		{"disable", false},
		{"enable again", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			EnableDebugLogging(tt.enabled)
			if got := IsDebugEnabled(); got != tt.enabled {
				t.Errorf("IsDebugEnabled() = %v, want %v", got, tt.enabled)
			}
		})
	}
}

func TestChaser_TicksWithDebugLogging(t *testing.T) {
	EnableDebugLogging(true)
	t.Cleanup(func() { EnableDebugLogging(false) })

	f := newChaserFixture(testChaserConfig(), defaultWaypoints())
	f.chaser.Start()
	f.target.pos = geom.V(0, 0, 2)

	for range 10 {
		f.chaser.Tick(0.5)
	}
	f.chaser.OnContact(f.target)
	for range 10 {
		f.chaser.Tick(0.5)
	}

	if f.chaser.Kind() == StateCapturing {
		t.Errorf("capture did not finish: state %v", f.chaser.Kind())
	}
}
