package config

import (
	"os"

	"github.com/ReconfigureIO/logruzio"
	isatty "github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// SetupLogging picks a text formatter on terminals and JSON otherwise,
// and ships logs to logz.io when a token is configured.
func SetupLogging(version string, conf *Config) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if conf.Converge.Env != "production" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if conf.Converge.LogzioToken == "" {
		return nil
	}
	ctx := logrus.Fields{
		"Environment": conf.Converge.Env,
		"Version":     version,
		"Application": conf.ProgramName,
	}
	hook, err := logruzio.New(conf.Converge.LogzioToken, conf.ProgramName, ctx)
	if err != nil {
		return err
	}
	logrus.AddHook(hook)
	return nil
}
