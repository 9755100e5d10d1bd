// Package mdtype turns Markdown-style delimiters typed into a live editing
// surface into styled text.
//
// Typing '*', '_' or '~' opens a pending span. Typing the same delimiter again
// consumes the keystroke, removes the opening delimiter and restyles the text
// in between as bold, italic or strikethrough. Only one span can be pending;
// deleting any delimiter character cancels it.
//
// Core properties:
//   - Transition is a pure function over PendingStyle; Tracker keeps the state
//   - Applier rebuilds the host buffer wholesale and resets typing attributes
//   - The host owns the buffer; Editor implements the edit callback contract
//   - Session, Replay and Render provide an in-memory host, scripted input and
//     ANSI output
//
// Example:
//
//	s := mdtype.NewSession("hi ")
//	if err := s.Type("*world*"); err != nil {
//		log.Fatal(err)
//	}
//	err := mdtype.Render(mdtype.RenderRequest{
//		Writer: os.Stdout,
//		Text:   s.Text(),
//		Width:  80,
//		Theme:  mdtype.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package mdtype
