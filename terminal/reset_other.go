//go:build !linux

package terminal

// resetTerminalMode relies on the escape sequences alone off Linux
func resetTerminalMode() {}
