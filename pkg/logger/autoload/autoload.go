// Package autoload initializes the global logger from the LOG_* environment
// on import.
package autoload

import (
	configx "deskrouter/pkg/config"
	logx "deskrouter/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
