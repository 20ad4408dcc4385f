package utils

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// MessageType defines the type of message box to render.
type MessageType int

const (
	// InfoMessage represents an informational message.
	InfoMessage MessageType = iota
	// SuccessMessage represents a success message.
	SuccessMessage
	// WarningMessage represents a warning message.
	WarningMessage
	// ErrorMessage represents an error message.
	ErrorMessage
)

const (
	infoPrefix    = "ℹ"
	successPrefix = "✓"
	warningPrefix = "⚠"
	errorPrefix   = "✗"
)

const (
	topLeft     = "╭"
	topRight    = "╮"
	bottomLeft  = "╰"
	bottomRight = "╯"
	horizontal  = "─"
	vertical    = "│"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Box is a builder for creating formatted message boxes.
type Box struct {
	messageType MessageType
	title       string
	content     []string
}

// NewBox creates a new message box with a specific type.
func NewBox(messageType MessageType, title string) *Box {
	return &Box{
		messageType: messageType,
		title:       title,
	}
}

// AddLine adds a line of text to the message box content.
func (b *Box) AddLine(text string) *Box {
	b.content = append(b.content, text)
	return b
}

// AddBullet adds a bulleted line to the message box content.
func (b *Box) AddBullet(text string) *Box {
	b.content = append(b.content, fmt.Sprintf("• %s", text))
	return b
}

// Render builds and returns the formatted message box as a string.
func (b *Box) Render() string {
	style, prefix := b.styleAndPrefix()

	contentWidth := getTerminalWidth() - 14
	var lines []string
	for _, line := range append([]string{b.title}, b.content...) {
		if utf8.RuneCountInString(line) <= contentWidth {
			lines = append(lines, line)
		} else {
			lines = append(lines, wrapText(line, contentWidth)...)
		}
	}

	boxWidth := 6
	for _, line := range lines {
		if w := utf8.RuneCountInString(line) + 6; w > boxWidth {
			boxWidth = w
		}
	}

	var sb strings.Builder
	sb.WriteString(style.Render(topLeft+strings.Repeat(horizontal, boxWidth-2)+topRight) + "\n")
	for i, line := range lines {
		// the styled prefix and the plain lead both occupy two cells
		lead := "  "
		if i == 0 {
			lead = style.Bold(true).Render(prefix) + " "
		}
		pad := boxWidth - utf8.RuneCountInString(line) - 4
		if pad < 0 {
			pad = 0
		}
		sb.WriteString(fmt.Sprintf("%s %s%s%s %s\n",
			style.Render(vertical), lead, line, strings.Repeat(" ", pad), style.Render(vertical)))
	}
	sb.WriteString(style.Render(bottomLeft + strings.Repeat(horizontal, boxWidth-2) + bottomRight))
	return sb.String()
}

func (b *Box) styleAndPrefix() (lipgloss.Style, string) {
	switch b.messageType {
	case SuccessMessage:
		return successStyle, successPrefix
	case WarningMessage:
		return warningStyle, warningPrefix
	case ErrorMessage:
		return errorStyle, errorPrefix
	default:
		return infoStyle, infoPrefix
	}
}

// Convenience functions for creating and rendering message boxes.

func Info(title string, lines ...string) string {
	return render(InfoMessage, title, lines)
}

func Success(title string, lines ...string) string {
	return render(SuccessMessage, title, lines)
}

func Warning(title string, lines ...string) string {
	return render(WarningMessage, title, lines)
}

func Error(title string, lines ...string) string {
	return render(ErrorMessage, title, lines)
}

func render(messageType MessageType, title string, lines []string) string {
	box := NewBox(messageType, title)
	for _, line := range lines {
		box.AddLine(line)
	}
	return box.Render()
}

func wrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	var wrapped []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+1+utf8.RuneCountInString(word) > width {
			wrapped = append(wrapped, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		wrapped = append(wrapped, current.String())
	}
	return wrapped
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100
	}
	return width
}
