package orchestrator_test

import (
	"context"
	"errors"

	"github.com/EmekaIwuagwu/articium-hub/orchestrator"
	"github.com/EmekaIwuagwu/articium-hub/target"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TargetExecutable", func() {
	var amoy = target.Target{Name: "polygon-amoy", ChainID: 80002}

	It("returns a success result when the deployer succeeds", func() {
		executable := orchestrator.NewTargetExecutable(orchestrator.DeployFunc(func(context.Context, target.Target) error {
			return nil
		}), amoy)

		result := executable.Execute(context.Background())

		Expect(result).To(Equal(orchestrator.Result{Target: amoy, Outcome: orchestrator.Success}))
		Expect(result.Succeeded()).To(BeTrue())
	})

	It("turns a deployer error into a failed result", func() {
		executable := orchestrator.NewTargetExecutable(orchestrator.DeployFunc(func(context.Context, target.Target) error {
			return errors.New("nonce too low")
		}), amoy)

		result := executable.Execute(context.Background())

		Expect(result.Outcome).To(Equal(orchestrator.Failed))
		Expect(result.ErrorMessage).To(Equal("nonce too low"))
		Expect(result.Succeeded()).To(BeFalse())
	})

	It("never leaves a failed result without a message", func() {
		executable := orchestrator.NewTargetExecutable(orchestrator.DeployFunc(func(context.Context, target.Target) error {
			return errors.New("  ")
		}), amoy)

		result := executable.Execute(context.Background())

		Expect(result.Outcome).To(Equal(orchestrator.Failed))
		Expect(result.ErrorMessage).To(Equal("deployment failed"))
	})

	It("renders outcomes", func() {
		Expect(orchestrator.Success.String()).To(Equal("Success"))
		Expect(orchestrator.Failed.String()).To(Equal("Failed"))
	})
})
