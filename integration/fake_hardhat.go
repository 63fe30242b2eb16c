package integration

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	. "github.com/onsi/gomega"
)

const fakeHardhatScript = `#!/bin/sh
# invoked as: <runner> hardhat run <script> --network <name>
network="$5"
echo "$network" >> "$FAKE_HARDHAT_LOG"
for failing in $FAKE_HARDHAT_FAIL; do
  if [ "$failing" = "$network" ]; then
    echo "Error: RPC timeout" >&2
    exit 1
  fi
done
echo "Bridge deployed to $network"
`

// FakeHardhat stands in for `npx` so that the binary can be driven without a
// real hardhat project.
type FakeHardhat struct {
	Path    string
	logPath string
}

func NewFakeHardhat(dir string) FakeHardhat {
	path := filepath.Join(dir, "fake-npx")
	Expect(ioutil.WriteFile(path, []byte(fakeHardhatScript), 0755)).To(Succeed())

	return FakeHardhat{
		Path:    path,
		logPath: filepath.Join(dir, "deployed-networks.log"),
	}
}

func (f FakeHardhat) Env(failingNetworks ...string) []string {
	return []string{
		"FAKE_HARDHAT_LOG=" + f.logPath,
		"FAKE_HARDHAT_FAIL=" + strings.Join(failingNetworks, " "),
	}
}

func (f FakeHardhat) DeployedNetworks() []string {
	contents, err := ioutil.ReadFile(f.logPath)
	if err != nil {
		return []string{}
	}
	return strings.Fields(string(contents))
}
