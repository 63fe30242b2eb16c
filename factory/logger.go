package factory

import (
	"io"
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

var ApplicationLoggerWriter io.Writer = os.Stderr

func BuildLogger(debug bool) boshlog.Logger {
	return BuildLoggerWithCustomWriter(ApplicationLoggerWriter, debug)
}

func BuildLoggerWithCustomWriter(w io.Writer, debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, w)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, w)
}
