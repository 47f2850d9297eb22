package commands

import (
	"strings"

	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// CommandLogger returns the logger for a group of command handlers, for
// example "posts", tagged with component and command_module fields.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.CommandsLogger(provider)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
