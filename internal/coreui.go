package internal

import "github.com/theyemeni/client-app-sdk/pkg/webmsg"

// CoreUI drives shared chrome in the host UI.
type CoreUI struct {
	ch *webmsg.Channel
}

// ShowHelp opens the host's help panel.
func (f *CoreUI) ShowHelp() error {
	return f.ch.Post("showHelp", nil)
}

// HideHelp closes the host's help panel.
func (f *CoreUI) HideHelp() error {
	return f.ch.Post("hideHelp", nil)
}

// ShowResourceCenterArtifact opens a specific artifact in the host's
// resource center.
func (f *CoreUI) ShowResourceCenterArtifact(artifactID string) error {
	return f.ch.Post("showResourceCenterArtifact", map[string]any{
		"artifactId": artifactID,
	})
}
