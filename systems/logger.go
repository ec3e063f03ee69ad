package systems

import "go.uber.org/zap"

var log = zap.NewNop()

// SetLogger sets the logger used by the game systems. A nil logger
// silences them.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}
