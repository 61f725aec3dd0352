package primitives

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// TextViewport shows a block of text in a scrollable viewport.
//
// The text is kept unwrapped so it can be reflowed on every resize.
type TextViewport struct {
	viewport viewport.Model
	text     string
	mu       sync.RWMutex
}

// NewTextViewport creates an empty viewport with minimal dimensions.
func NewTextViewport() *TextViewport {
	return &TextViewport{
		viewport: viewport.New(20, 1),
	}
}

// SetText replaces the content and scrolls to the top.
func (tv *TextViewport) SetText(text string) {
	tv.mu.Lock()
	defer tv.mu.Unlock()

	tv.text = text
	tv.viewport.SetContent(reflow(text, tv.viewport.Width))
	tv.viewport.GotoTop()
}

// Text returns the unwrapped text.
func (tv *TextViewport) Text() string {
	tv.mu.RLock()
	defer tv.mu.RUnlock()
	return tv.text
}

// Resize sets dimensions and reflows the content.
//
// Height is clamped to at least 1 line, width to at least 20 columns.
func (tv *TextViewport) Resize(width, height int) {
	tv.mu.Lock()
	defer tv.mu.Unlock()

	if width < 20 {
		width = 20
	}
	if height < 1 {
		height = 1
	}

	tv.viewport.Width = width
	tv.viewport.Height = height
	tv.viewport.SetContent(reflow(tv.text, width))

	maxOffset := tv.viewport.TotalLineCount() - tv.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if tv.viewport.YOffset > maxOffset {
		tv.viewport.SetYOffset(maxOffset)
	}
}

// ScrollUp scrolls the viewport up by n lines
func (tv *TextViewport) ScrollUp(n int) {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	tv.viewport.LineUp(n)
}

// ScrollDown scrolls the viewport down by n lines
func (tv *TextViewport) ScrollDown(n int) {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	tv.viewport.LineDown(n)
}

// LineCount returns the number of wrapped lines.
func (tv *TextViewport) LineCount() int {
	tv.mu.RLock()
	defer tv.mu.RUnlock()
	return tv.viewport.TotalLineCount()
}

// Dimensions returns the current viewport dimensions.
func (tv *TextViewport) Dimensions() (width, height int) {
	tv.mu.RLock()
	defer tv.mu.RUnlock()
	return tv.viewport.Width, tv.viewport.Height
}

// YOffset returns the current scroll offset.
func (tv *TextViewport) YOffset() int {
	tv.mu.RLock()
	defer tv.mu.RUnlock()
	return tv.viewport.YOffset
}

// View renders the visible part.
func (tv *TextViewport) View() string {
	tv.mu.RLock()
	defer tv.mu.RUnlock()
	return tv.viewport.View()
}

// reflow word-wraps text to width, hard-wrapping words longer than a line
// (URLs in articles are common).
func reflow(text string, width int) string {
	if width <= 0 || text == "" {
		return text
	}
	soft := wordwrap.String(text, width)
	return strings.TrimRight(wrap.String(soft, width), "\n")
}
