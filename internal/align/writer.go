package align

import (
	"io"
	"strings"
)

// Writer wraps an io.Writer with a pending field width and a fill
// character. The width is consumed by exactly one formatted write and then
// reverts to 0; the fill character persists until changed. Writer is not
// safe for concurrent use; callers sharing one must serialise access.
type Writer struct {
	w     io.Writer
	width int
	fill  rune
}

// NewWriter creates a width-aware writer over w with no pending width and
// a space fill character.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, fill: ' '}
}

// SetWidth sets the pending field width for the next formatted write.
// Negative widths are treated as 0.
func (w *Writer) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	w.width = width
}

// Width returns the pending field width.
func (w *Writer) Width() int {
	return w.width
}

// SetFill sets the fill character used for padding.
func (w *Writer) SetFill(fill rune) {
	w.fill = fill
}

// Fill returns the current fill character.
func (w *Writer) Fill() rune {
	return w.fill
}

// takeWidth returns the pending width and resets it, matching the
// consumed-once semantics of stream width modifiers.
func (w *Writer) takeWidth() int {
	width := w.width
	w.width = 0
	return width
}

// WriteRightJustified writes s right-justified in the pending field width,
// consuming it. Shortfall is made up with leading fill characters; content
// longer than the field is written verbatim.
func (w *Writer) WriteRightJustified(s string) (int, error) {
	width := w.takeWidth()
	if pad := width - len(s); pad > 0 {
		n, err := io.WriteString(w.w, strings.Repeat(string(w.fill), pad))
		if err != nil {
			return n, err
		}
		m, err := io.WriteString(w.w, s)
		return n + m, err
	}
	return io.WriteString(w.w, s)
}

// WriteField writes f centred in the pending field width, consuming it.
//
// For width W and content length L with W > L, the left pad receives
// (W+L)/2 - L fill characters and the right pad the remaining W - L - that
// many. Integer division means odd slack goes to the LEFT pad, skewing the
// content one column right; callers rely on this exact alignment, so the
// tie-break must not change. When W <= L the content is written verbatim
// and never truncated.
func (w *Writer) WriteField(f Field) (int, error) {
	width := w.takeWidth()
	if width > f.Len() {
		left := (width + f.Len()) / 2
		w.SetWidth(left)
		n, err := w.WriteRightJustified(f.String())
		if err != nil {
			return n, err
		}
		w.SetWidth(width - left)
		m, err := w.WriteRightJustified("")
		return n + m, err
	}
	return io.WriteString(w.w, f.String())
}

// Centre returns s centred in the given width with spaces, using the same
// padding computation as Writer.WriteField. It is the stateless form for
// callers that have the width in hand and no stream to thread it through.
func Centre(s string, width int) string {
	return CentreFill(s, width, ' ')
}

// CentreFill returns s centred in the given width using fill for padding.
// Content at least width long is returned unchanged.
func CentreFill(s string, width int, fill rune) string {
	if width <= len(s) {
		return s
	}
	left := (width + len(s)) / 2
	var b strings.Builder
	b.Grow(width)
	b.WriteString(strings.Repeat(string(fill), left-len(s)))
	b.WriteString(s)
	b.WriteString(strings.Repeat(string(fill), width-left))
	return b.String()
}
