package internal

import "github.com/theyemeni/client-app-sdk/pkg/webmsg"

// Conversations opens interaction-centric views in the host UI.
type Conversations struct {
	ch *webmsg.Channel
}

// ShowInteractionDetails navigates the host to an interaction's detail view.
func (f *Conversations) ShowInteractionDetails(conversationID string) error {
	return f.ch.Post("showInteractionDetails", map[string]any{
		"conversationId": conversationID,
	})
}
