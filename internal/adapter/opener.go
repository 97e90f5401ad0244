package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
)

// IMDbTitleURL returns the public IMDb page for a catalog id
func IMDbTitleURL(id string) string {
	return "https://www.imdb.com/title/" + url.PathEscape(id) + "/"
}

// Opener opens web URLs (posters, title pages) in an external viewer
type Opener struct {
	command string   // configured viewer command, empty for system default
	args    []string // additional arguments for the viewer
	logger  *slog.Logger

	start func(name string, args ...string) error
}

// NewOpener creates an opener using command, or the system default when empty
func NewOpener(command string, args []string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command: command,
		args:    args,
		logger:  logger,
		start:   startDetached,
	}
}

// Open launches the viewer for rawURL without waiting for it to exit.
// Only http and https URLs are accepted.
func (o *Opener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not a web URL", rawURL)
	}

	name, args := o.commandFor(u.String())
	o.logger.Info("opening url", "command", name, "url", u.String())
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}

// commandFor returns the command line that opens target
func (o *Opener) commandFor(target string) (string, []string) {
	if o.command != "" {
		args := append([]string{}, o.args...)
		return o.command, append(args, target)
	}

	switch runtime.GOOS {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "cmd", []string{"/c", "start", "", target}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{target}
	}
}

func startDetached(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}
