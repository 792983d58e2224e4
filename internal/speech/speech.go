// Package speech reads words aloud through an external text-to-speech command.
package speech

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Speaker says a word out loud.
type Speaker interface {
	Speak(ctx context.Context, word string) error
}

// CommandSpeaker runs a command such as "espeak" or "say" with the word as
// its last argument.
type CommandSpeaker struct {
	name string
	args []string
}

// NewCommandSpeaker parses command into a CommandSpeaker. An empty command
// yields a speaker that does nothing.
func NewCommandSpeaker(command string) *CommandSpeaker {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return &CommandSpeaker{}
	}
	return &CommandSpeaker{name: parts[0], args: parts[1:]}
}

// Enabled reports whether a command is configured.
func (s *CommandSpeaker) Enabled() bool {
	return s != nil && s.name != ""
}

// Speak runs the command and waits for it to exit.
func (s *CommandSpeaker) Speak(ctx context.Context, word string) error {
	if !s.Enabled() || strings.TrimSpace(word) == "" {
		return nil
	}
	args := append(append([]string(nil), s.args...), word)
	cmd := exec.CommandContext(ctx, s.name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("failed to run %s: %w: %s", s.name, err, msg)
		}
		return fmt.Errorf("failed to run %s: %w", s.name, err)
	}
	return nil
}

// DefaultCommand returns the first known speech command found on PATH, or "".
func DefaultCommand() string {
	for _, candidate := range []string{"say", "espeak-ng", "espeak", "spd-say"} {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Bell rings the terminal bell.
func Bell(w io.Writer) error {
	_, err := io.WriteString(w, "\a")
	return err
}
