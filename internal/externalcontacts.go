package internal

import "github.com/theyemeni/client-app-sdk/pkg/webmsg"

// ExternalContacts opens external-relationship views in the host UI.
type ExternalContacts struct {
	ch *webmsg.Channel
}

// ShowContactProfile navigates the host to an external contact's profile.
func (f *ExternalContacts) ShowContactProfile(contactID string) error {
	return f.ch.Post("showExternalContactProfile", map[string]any{
		"contactId": contactID,
	})
}

// ShowOrganizationProfile navigates the host to an external organization's
// profile.
func (f *ExternalContacts) ShowOrganizationProfile(organizationID string) error {
	return f.ch.Post("showExternalOrganizationProfile", map[string]any{
		"organizationId": organizationID,
	})
}
