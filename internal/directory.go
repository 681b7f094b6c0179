package internal

import "github.com/theyemeni/client-app-sdk/pkg/webmsg"

// Directory opens org-directory views in the host UI.
type Directory struct {
	ch *webmsg.Channel
}

// ShowGroup navigates the host to a group's directory page.
func (f *Directory) ShowGroup(groupID string) error {
	return f.ch.Post("showGroup", map[string]any{
		"groupId": groupID,
	})
}
