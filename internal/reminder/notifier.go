package reminder

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Notifier delivers a nudge to the user's desktop.
type Notifier interface {
	Send(title, body string) error
}

// NoopNotifier swallows every notification. Used when desktop
// notifications are disabled and in tests.
type NoopNotifier struct{}

func (NoopNotifier) Send(title, body string) error { return nil }

// ExecNotifier shells out to the platform notification tool: notify-send
// on Linux, osascript on macOS. Other platforms silently no-op.
type ExecNotifier struct{}

func (ExecNotifier) Send(title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// RecordingNotifier captures sent notifications for tests.
type RecordingNotifier struct {
	Sent []string
	Err  error
}

func (r *RecordingNotifier) Send(title, body string) error {
	r.Sent = append(r.Sent, title+": "+body)
	return r.Err
}
