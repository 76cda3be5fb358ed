package game

import "fmt"

// ConfigError is returned when the grid, the level tables or the terminal
// surface cannot host a game. It is fatal and raised before any game state
// is built.
type ConfigError struct {
	msg string
}

func newConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

func (err *ConfigError) Error() string {
	return err.msg
}
