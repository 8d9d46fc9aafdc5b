package constants

// Debug log file settings
const (
	LogDir      = "logs"
	LogFileName = "snake.log"

	// MaxLogSize triggers rotation of the existing log at startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
