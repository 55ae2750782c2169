package domain

import "context"

//go:generate mockgen -destination mocks/mock_page_ports.go -package mocks github.com/Notifuse/designer/internal/domain Notifier,Navigator,MediaPicker

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

// Notification is a toast shown to the operator. Message is already localized.
type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
}

type Notifier interface {
	Notify(n Notification)
}

// Navigator drives the host router
type Navigator interface {
	// Replace swaps the current location without a history entry
	Replace(path string)
	// GoBack leaves the page; confirm is the prompt text, empty when no
	// confirmation is needed
	GoBack(confirm string)
}

// MediaAsset is a file chosen in the host's media library
type MediaAsset struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	Mime string `json:"mime,omitempty"`
}

// MediaPicker opens the host's media library. A nil asset with a nil error
// means the operator closed the picker without choosing.
type MediaPicker interface {
	Pick(ctx context.Context) (*MediaAsset, error)
}

// Translator resolves message keys for the page's locale
type Translator interface {
	T(key string) string
}

// DesignerPath is the host route of the designer page for a template
func DesignerPath(pluginID string, id TemplateID) string {
	return "/plugins/" + pluginID + "/design/" + id.String()
}
