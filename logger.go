package replay

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is used by the packages in this module when the caller does not provide one.
var Logger = logrus.New()

// LogEnv names the environment variable holding the initial log level.
const LogEnv = "LOG"

func init() {
	if x, exists := os.LookupEnv(LogEnv); exists {
		if err := SetLogLevel(x); err != nil {
			Logger.Warn(err)
		}
	}
}

// SetLogLevel sets the level of Logger by name, e.g. "debug" or "warn".
func SetLogLevel(name string) error {
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return err
	}
	Logger.SetLevel(level)
	return nil
}
