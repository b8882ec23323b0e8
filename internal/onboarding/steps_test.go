package onboarding

import (
	"context"
	"testing"
)

func TestComputeSteps(t *testing.T) {
	tests := []struct {
		location, notifications bool
		want                    int
	}{
		{false, false, 8},
		{true, false, 9},
		{false, true, 9},
		{true, true, 10},
	}

	for _, tt := range tests {
		got := ComputeSteps(tt.location, tt.notifications)
		if got.TotalSteps != tt.want {
			t.Fatalf("ComputeSteps(%v, %v) = %d, want %d", tt.location, tt.notifications, got.TotalSteps, tt.want)
		}
		if got.ShouldShowLocation != tt.location || got.ShouldShowNotifications != tt.notifications {
			t.Fatalf("flags not echoed: %+v", got)
		}
		if len(got.Screens) != got.TotalSteps {
			t.Fatalf("expected %d screens, got %v", got.TotalSteps, got.Screens)
		}
	}
}

func TestComputeStepsOrdersPermissionScreensLast(t *testing.T) {
	steps := ComputeSteps(true, true)
	if steps.Screens[0] != ScreenPhoneAuth || steps.Screens[8] != ScreenLocation || steps.Screens[9] != ScreenNotifications {
		t.Fatalf("unexpected order %v", steps.Screens)
	}
}

func TestStepsForUsesCollaborators(t *testing.T) {
	steps := StepsFor(context.Background(), Permission(false), Permission(true))
	if steps.TotalSteps != 9 || steps.ShouldShowLocation || !steps.ShouldShowNotifications {
		t.Fatalf("unexpected steps %+v", steps)
	}
}
