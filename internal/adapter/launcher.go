package adapter

import (
	"errors"
	"log/slog"
	"os/exec"
	"runtime"
)

// ErrNoURL is returned when an artwork has no page to open
var ErrNoURL = errors.New("no url to open")

// Launcher opens artwork pages and images in an external viewer
type Launcher struct {
	command string   // configured viewer command, empty for system default
	args    []string // additional arguments for the viewer
	logger  *slog.Logger

	// start runs the command; replaced in tests
	start func(name string, args ...string) error
}

// NewLauncher creates a new Launcher
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: command,
		args:    args,
		logger:  logger,
		start:   startCommand,
	}
}

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start() // Start async, don't wait
}

// Open opens a URL in the configured viewer or the system default handler
func (l *Launcher) Open(url string) error {
	if url == "" {
		return ErrNoURL
	}
	name, args := l.commandFor(url, runtime.GOOS)
	l.logger.Info("opening url", "command", name, "args", args)
	return l.start(name, args...)
}

// commandFor resolves the command line for a URL on the given platform
func (l *Launcher) commandFor(url, goos string) (string, []string) {
	if l.command != "" {
		args := append(append([]string{}, l.args...), url)
		return l.command, args
	}

	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{url}
	}
}
