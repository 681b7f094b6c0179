package internal

import "github.com/theyemeni/client-app-sdk/pkg/webmsg"

// Toast types understood by the host UI.
const (
	ToastInfo    = "info"
	ToastSuccess = "success"
	ToastError   = "error"
)

// Alerting surfaces attention-grabbing popups in the host UI.
type Alerting struct {
	ch *webmsg.Channel
}

// ToastOption configures a toast popup.
type ToastOption func(map[string]any)

// WithToastID tags the toast so later calls with the same id replace it
// instead of stacking a new popup.
func WithToastID(id string) ToastOption {
	return func(p map[string]any) {
		p["id"] = id
	}
}

// WithToastType sets the toast type (ToastInfo, ToastSuccess, ToastError).
func WithToastType(t string) ToastOption {
	return func(p map[string]any) {
		p["type"] = t
	}
}

// WithToastTimeout sets how many seconds the toast stays up.
// Zero keeps it up until the user dismisses it.
func WithToastTimeout(seconds int) ToastOption {
	return func(p map[string]any) {
		p["timeout"] = seconds
	}
}

// WithMarkdownMessage renders the toast message as markdown.
func WithMarkdownMessage() ToastOption {
	return func(p map[string]any) {
		p["markdownMessage"] = true
	}
}

// ShowToast displays a toast popup in the host UI.
func (f *Alerting) ShowToast(title, message string, opts ...ToastOption) error {
	payload := map[string]any{
		"title":   title,
		"message": message,
		"type":    ToastInfo,
	}
	for _, opt := range opts {
		opt(payload)
	}
	return f.ch.Post("showToast", payload)
}
