// Package ui hosts the screen controller inside a Bubble Tea program.
//
// Bubble Tea owns the terminal in this mode, so the controller talks to a
// Terminal instead of the raw gateway:
//   - Key messages are queued on the Terminal and read back through PollKey,
//     which keeps the debounce window in charge of acceptance.
//   - A tick message runs one controller Step per frame interval. Step may
//     paint, and the last painted frame becomes the model's View.
//   - The key hint line is rendered below the canvas with the theme's Hint
//     style and truncated to the window width.
//
// Harness drives the model without a program for tests.
package ui
