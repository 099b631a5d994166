package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer prints status lines. Colours are only emitted when the target
// writer is a terminal.
type Renderer struct {
	out io.Writer
	err io.Writer

	green lipgloss.Style
	red   lipgloss.Style
	gray  lipgloss.Style
	cyan  lipgloss.Style
}

func NewRenderer(out, errOut io.Writer) *Renderer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Renderer{
		out:   out,
		err:   errOut,
		green: outR.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		cyan:  outR.NewStyle().Foreground(lipgloss.Color("14")),
		red:   errR.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		gray:  errR.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Success prints msg on stdout.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.green.Render(msg))
}

// Info prints a secondary line on stdout.
func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, r.cyan.Render(msg))
}

// Error prints a diagnostic on stderr, followed by an optional hint.
func (r *Renderer) Error(msg, hint string) {
	for _, line := range strings.Split(strings.TrimRight(msg, "\n"), "\n") {
		fmt.Fprintln(r.err, r.red.Render("error: "+line))
	}
	if hint != "" {
		fmt.Fprintln(r.err, r.gray.Render("  → "+hint))
	}
}

// Warn prints a non-fatal notice on stderr.
func (r *Renderer) Warn(msg string) {
	fmt.Fprintln(r.err, r.gray.Render("warning: "+msg))
}
