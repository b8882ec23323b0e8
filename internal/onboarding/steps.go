// Package onboarding counts onboarding steps and records when a user has
// finished the flow.
package onboarding

import "context"

// BaseSteps is the number of screens every user goes through.
const BaseSteps = 8

// Screen identifiers in flow order.
const (
	ScreenPhoneAuth     = "phone-auth"
	ScreenVerifyCode    = "verify-code"
	ScreenUserName      = "user-name"
	ScreenUserAge       = "user-age"
	ScreenUserGender    = "user-gender"
	ScreenUserPhotos    = "user-photos"
	ScreenConnectWith   = "connect-with"
	ScreenIntention     = "intention"
	ScreenLocation      = "location"
	ScreenNotifications = "notifications"
)

var baseScreens = [BaseSteps]string{
	ScreenPhoneAuth,
	ScreenVerifyCode,
	ScreenUserName,
	ScreenUserAge,
	ScreenUserGender,
	ScreenUserPhotos,
	ScreenConnectWith,
	ScreenIntention,
}

// Steps describes the flow for one device.
type Steps struct {
	TotalSteps              int      `json:"totalSteps"`
	ShouldShowLocation      bool     `json:"shouldShowLocation"`
	ShouldShowNotifications bool     `json:"shouldShowNotifications"`
	Screens                 []string `json:"screens"`
}

// ComputeSteps returns the flow given which permission screens are needed.
func ComputeSteps(showLocation, showNotifications bool) Steps {
	screens := make([]string, 0, BaseSteps+2)
	screens = append(screens, baseScreens[:]...)
	if showLocation {
		screens = append(screens, ScreenLocation)
	}
	if showNotifications {
		screens = append(screens, ScreenNotifications)
	}
	return Steps{
		TotalSteps:              len(screens),
		ShouldShowLocation:      showLocation,
		ShouldShowNotifications: showNotifications,
		Screens:                 screens,
	}
}

// PermissionStatus reports whether a permission screen still has to be shown,
// i.e. the permission has not been granted yet.
type PermissionStatus interface {
	ShouldShowScreen(ctx context.Context) bool
}

// Permission is a fixed PermissionStatus.
type Permission bool

func (p Permission) ShouldShowScreen(context.Context) bool {
	return bool(p)
}

// StepsFor computes the flow from live permission collaborators.
func StepsFor(ctx context.Context, location, notifications PermissionStatus) Steps {
	return ComputeSteps(location.ShouldShowScreen(ctx), notifications.ShouldShowScreen(ctx))
}
