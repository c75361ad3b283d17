package action

import (
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Guard runs fn and logs whatever goes wrong: a returned error or a panic.
// It always returns normally.
func Guard(log zerolog.Logger, name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("action", name).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("action panicked")
		}
	}()

	if err := fn(); err != nil {
		log.Error().Str("action", name).Err(err).Msg("action failed")
	}
}
