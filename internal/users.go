package internal

import "github.com/theyemeni/client-app-sdk/pkg/webmsg"

// Users opens user-centric views in the host UI.
type Users struct {
	ch *webmsg.Channel
}

// ShowProfile navigates the host to a user's profile.
func (f *Users) ShowProfile(userID string) error {
	return f.ch.Post("showProfile", map[string]any{
		"profileId": userID,
	})
}
