// Package platform sends desktop notifications.
package platform

// AppName is reported to the notification server.
const AppName = "inkshot"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file shown alongside the
	// notification where supported.
	IconPath string
	// Timeout is the display time in milliseconds; zero selects the server default.
	Timeout int32
}
