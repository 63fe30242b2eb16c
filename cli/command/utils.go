package command

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// trapSignals cancels the returned context on the first SIGINT/SIGTERM and
// exits on the second.
func trapSignals(stdout io.Writer) (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 2)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go handleSignals(signalChan, done, stdout, cancel, os.Exit)

	return ctx, func() {
		signal.Stop(signalChan)
		close(done)
		cancel()
	}
}

// handleSignals returns once done is closed or after calling exit.
func handleSignals(signals <-chan os.Signal, done <-chan struct{}, stdout io.Writer, cancel func(), exit func(int)) {
	interrupted := false
	for {
		select {
		case <-done:
			return
		case <-signals:
			if interrupted {
				exit(1)
				return
			}
			interrupted = true
			fmt.Fprintln(stdout, "\n"+interruptNotice)
			cancel()
		}
	}
}

func processUnexpectedError(err error, stack []byte) error {
	errorWithStackTrace := fmt.Sprintf("%+v\n\n%s", err, stack)
	if writeErr := writeStackTrace(errorWithStackTrace); writeErr != nil {
		return redCliError(errors.Wrap(err, writeErr.Error()))
	}

	return redCliError(err)
}

func writeStackTrace(errorWithStackTrace string) error {
	if errorWithStackTrace != "" {
		err := ioutil.WriteFile(fmt.Sprintf("deploy-all-%s.err.log", time.Now().UTC().Format(time.RFC3339)), []byte(errorWithStackTrace), 0644)
		if err != nil {
			return err
		}
	}
	return nil
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}
