// Package terminal hosts an mdtype editing session on a tcell screen.
//
// Keys are forwarded to the session as edits at the cursor, so delimiters
// typed around a span restyle it as soon as the closing delimiter is typed.
// The first row shows the pending-style status; the document is drawn below
// it with bold, italic and strikethrough cell attributes.
package terminal
