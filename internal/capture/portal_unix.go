//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	portalName      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalScreen    = "org.freedesktop.portal.Screenshot.Screenshot"
	portalResponse  = "org.freedesktop.portal.Request.Response"
	responseSuccess = 0
)

var portalHandleToken = newPortalHandleToken

func portalScreenshot(ctx context.Context, opts Options) (string, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return "", fmt.Errorf("dbus connect: %w", err)
	}
	defer conn.Close()

	sigc := make(chan *dbus.Signal, 4)
	conn.Signal(sigc)

	obj := conn.Object(portalName, portalPath)
	var handle dbus.ObjectPath
	call := obj.CallWithContext(ctx, portalScreen, 0, "", portalScreenshotOptions(opts))
	if call.Err != nil {
		return "", fmt.Errorf("portal screenshot call: %w", call.Err)
	}
	if err := call.Store(&handle); err != nil {
		return "", fmt.Errorf("portal screenshot response: %w", err)
	}

	rule := fmt.Sprintf("type='signal',interface='org.freedesktop.portal.Request',member='Response',path='%s'", handle)
	if err := conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, rule).Err; err != nil {
		return "", fmt.Errorf("portal screenshot subscribe: %w", err)
	}
	defer conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, rule)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case sig, ok := <-sigc:
			if !ok {
				return "", fmt.Errorf("portal screenshot: bus closed")
			}
			if sig.Path != handle || sig.Name != portalResponse {
				continue
			}
			return parseResponse(sig.Body)
		}
	}
}

func parseResponse(body []interface{}) (string, error) {
	if len(body) < 2 {
		return "", fmt.Errorf("portal screenshot: malformed response")
	}
	code, _ := body[0].(uint32)
	if code != responseSuccess {
		return "", ErrCancelled
	}
	res, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return "", fmt.Errorf("portal screenshot: malformed response")
	}
	v, ok := res["uri"]
	if !ok {
		return "", fmt.Errorf("portal screenshot: response missing image data")
	}
	uri, ok := v.Value().(string)
	if !ok {
		return "", fmt.Errorf("portal screenshot: uri is %T", v.Value())
	}
	return uri, nil
}

func newPortalHandleToken() string {
	return fmt.Sprintf("inkshot%d", time.Now().UnixNano())
}

func portalScreenshotOptions(opts Options) map[string]dbus.Variant {
	cursorMode := "hidden"
	if opts.IncludeCursor {
		cursorMode = "embedded"
	}
	return map[string]dbus.Variant{
		"interactive":  dbus.MakeVariant(opts.Interactive),
		"handle_token": dbus.MakeVariant(portalHandleToken()),
		"modal":        dbus.MakeVariant(opts.Interactive),
		"cursor_mode":  dbus.MakeVariant(cursorMode),
	}
}
