// Package terminal owns the tcell screen session: entering and leaving the
// alternate screen, hiding the cursor, and restoring the tty after a crash.
package terminal
