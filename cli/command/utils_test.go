package command

import (
	"context"
	"os"
	"syscall"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("handleSignals", func() {
	var (
		signals   chan os.Signal
		done      chan struct{}
		finished  chan struct{}
		exitCodes chan int
		stdout    *gbytes.Buffer
		ctx       context.Context
		stopped   bool
	)

	BeforeEach(func() {
		signals = make(chan os.Signal, 2)
		done = make(chan struct{})
		finished = make(chan struct{})
		exitCodes = make(chan int, 1)
		stdout = gbytes.NewBuffer()
		stopped = false

		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(context.Background())
		DeferCleanup(cancel)

		go func() {
			defer close(finished)
			handleSignals(signals, done, stdout, cancel, func(code int) {
				exitCodes <- code
			})
		}()
	})

	AfterEach(func() {
		if !stopped {
			close(done)
		}
		Eventually(finished).Should(BeClosed())
	})

	It("cancels the run on the first signal without exiting", func() {
		signals <- os.Interrupt

		Eventually(ctx.Done()).Should(BeClosed())
		Eventually(stdout).Should(gbytes.Say("Interrupt received, stopping after the current deployment"))
		Consistently(exitCodes).ShouldNot(Receive())
	})

	It("exits with status one on the second signal", func() {
		signals <- os.Interrupt
		signals <- syscall.SIGTERM

		Eventually(exitCodes).Should(Receive(Equal(1)))
		Eventually(finished).Should(BeClosed())
	})

	It("returns once the run is over", func() {
		close(done)
		stopped = true

		Eventually(finished).Should(BeClosed())
		Expect(ctx.Err()).NotTo(HaveOccurred())
	})
})
