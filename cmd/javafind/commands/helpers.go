package commands

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// paint wraps s in code when enabled.
func paint(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return code + s + colorReset
}
