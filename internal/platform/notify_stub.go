//go:build !linux

package platform

// Notify is a no-op on platforms without a freedesktop notification server.
func Notify(title, body string, opts Options) error {
	return nil
}
