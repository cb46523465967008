// Package screen implements the UI modes shown on the terminal canvas.
//
// Every screen owns one canvas and follows the same construct pipeline,
// driven by Base.Configure:
//
//   - a blank canvas is generated at the terminal size,
//   - the screen's fill hook produces its content lines,
//   - the lines are centred to compute an anchor,
//   - the draw hook paints the lines (by default a verbatim blit).
//
// While a screen is current the controller feeds it one key event per loop
// iteration through Render, which reports the screen to show next and
// whether the canvas changed. Screens never switch the current screen
// themselves; the controller applies the returned Result.
//
// Per-screen behaviour that the controller needs to know about, such as ESC
// handling or per-frame redraws, is declared in Capabilities.
package screen
