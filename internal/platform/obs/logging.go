package obs

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var levels = map[string]logrus.Level{
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
}

// Setup applies level and format ("text" or "json") to the standard logger.
func Setup(level, format string) error {
	return Configure(logrus.StandardLogger(), level, format)
}

func Configure(logger *logrus.Logger, level, format string) error {
	lvl, ok := levels[level]
	if !ok {
		return fmt.Errorf("setup logging: unknown level %q", level)
	}

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("setup logging: unknown format %q", format)
	}

	logger.SetLevel(lvl)
	return nil
}
