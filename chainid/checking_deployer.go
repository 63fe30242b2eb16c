package chainid

import (
	"context"
	"time"

	"github.com/EmekaIwuagwu/articium-hub/orchestrator"
	"github.com/EmekaIwuagwu/articium-hub/target"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

const (
	logTag       = "chainid"
	queryTimeout = 30 * time.Second
)

type Logger interface {
	Debug(tag, msg string, args ...interface{})
}

// CheckingDeployer makes sure a target's RPC endpoint serves the expected
// chain before handing the target to the next deployer.
type CheckingDeployer struct {
	next   orchestrator.Deployer
	logger Logger
}

func NewCheckingDeployer(next orchestrator.Deployer, logger Logger) CheckingDeployer {
	return CheckingDeployer{
		next:   next,
		logger: logger,
	}
}

func (d CheckingDeployer) Deploy(ctx context.Context, t target.Target) error {
	if t.RPCURL == "" {
		d.logger.Debug(logTag, "No RPC URL for %s, skipping chain id check", t.Name)
		return d.next.Deploy(ctx, t)
	}

	actual, err := fetchChainID(ctx, t.RPCURL)
	if err != nil {
		return errors.Wrapf(err, "failed to query chain id for %s", t.Name)
	}

	if actual != t.ChainID {
		return errors.Errorf("chain id mismatch for %s: expected %d, RPC reports %d", t.Name, t.ChainID, actual)
	}

	d.logger.Debug(logTag, "RPC for %s reports chain id %d", t.Name, actual)
	return d.next.Deploy(ctx, t)
}

func fetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, err
	}
	if !chainID.IsUint64() {
		return 0, errors.Errorf("chain id %s out of range", chainID)
	}
	return chainID.Uint64(), nil
}
