package log

import (
	"os"
	"path/filepath"

	"github.com/claimforge/claimforge/conf"
	"github.com/sirupsen/logrus"
)

// Gen is the logger used by the generation pipeline and CLI.
var Gen logrus.FieldLogger

func init() {
	Gen = Logger(logrus.New(), conf.GetEnv("CLAIMFORGE_LOG"),
		"claimforge", conf.GetEnv("ENVIRONMENT"))
}

// Logger directs the supplied logger at outputFile when one is configured,
// falling back to stderr, and stamps entries with the application and
// environment fields.
func Logger(logger *logrus.Logger, outputFile string,
	application, environment string) logrus.FieldLogger {

	if outputFile != "" {
		if file, err := os.OpenFile(filepath.Clean(outputFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640); err == nil {
			logger.SetOutput(file)
		} else {
			logger.Infof("Failed to open output file %s. Will use stderr. %s",
				outputFile, err.Error())
		}
	}

	return logger.WithFields(logrus.Fields{
		"application": application,
		"environment": environment})
}
