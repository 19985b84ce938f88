package notify

import "github.com/rs/zerolog"

// Notifier delivers user-facing messages. Implementations must be
// fire-and-forget: they never block or fail the operation that emitted
// the message.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to a structured log. The UI layer is
// expected to replace it with a real delivery channel.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info().Str("level", "success").Msg(message)
}

func (n *LogNotifier) Error(message string) {
	n.log.Warn().Str("level", "error").Msg(message)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}
