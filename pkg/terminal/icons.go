package terminal

// Icons for terminal output
const (
	IconSuccess  = "✅"
	IconError    = "❌"
	IconWarning  = "⚠️"
	IconInfo     = "ℹ️"
	IconRocket   = "🚀"
	IconGamepad  = "🎮"
	IconDisk     = "💾"
	IconSearch   = "🔍"
	IconCheck    = "✓"
	IconCross    = "✗"
	IconArrow    = "→"
	IconDot      = "•"
)
