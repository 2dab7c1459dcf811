package tui

import (
	"github.com/muesli/termenv"
)

// Success styles a message reporting a clean result.
func Success(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String("✔ " + msg).Foreground(p.Color("#22c55e")).Bold().String()
}

// Failure styles a message reporting problems.
func Failure(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String("✘ " + msg).Foreground(p.Color("#ef4444")).Bold().String()
}
