// @focus: #sys { term }
// Package terminal is the keystroke and screen collaborator for the tui toolkit.
//
// Features:
//   - cbreak mode (no line buffering, no echo) with output post-processing kept on
//   - Blocking single-keystroke reads decoding UTF-8, control bytes, CSI and SS3 sequences
//   - Terminal size queries, (0, 0) on failure
//   - Alternate screen and cursor helpers, emergency restore for panic paths
//
// The package emits direct ANSI sequences and bypasses terminfo entirely.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
