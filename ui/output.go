package ui

// CursorIcon asks the embedding application to change the pointer cursor.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorPointingHand
	CursorResizeHorizontal
	CursorResizeVertical
	CursorResizeDiagonal
	CursorText
)

// Output describes the side effects the embedding application should
// perform after a frame. Cleared and repopulated every frame.
type Output struct {
	// NeedsRepaint asks the host event loop for another frame even
	// absent new input, e.g. to drive an animation.
	NeedsRepaint bool
	// OpenURL is non-empty when a widget asked to open a link.
	OpenURL string
	// CopiedText is non-empty when text was copied to the clipboard.
	CopiedText string
	CursorIcon CursorIcon
}
