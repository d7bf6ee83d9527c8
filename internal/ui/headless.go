package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether the CLI runs without interactive UI
// (wizard, animated spinner). Detection follows the TTY state of stdin
// unless explicitly forced.
type HeadlessManager struct {
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager using automatic TTY detection.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when interactive components must be skipped.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection in either direction.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}
