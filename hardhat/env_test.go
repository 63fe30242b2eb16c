package hardhat_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/EmekaIwuagwu/articium-hub/hardhat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LoadEnv", func() {
	It("returns an empty environment when no file is given", func() {
		env, err := hardhat.LoadEnv("")
		Expect(err).NotTo(HaveOccurred())
		Expect(env).To(BeEmpty())
	})

	It("reads a dotenv file", func() {
		dir, err := ioutil.TempDir("", "env")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, ".env")
		Expect(ioutil.WriteFile(path, []byte("PRIVATE_KEY=0xabc\n# comment\nAMOY_RPC_URL=\"https://rpc-amoy.example.com\"\n"), 0600)).To(Succeed())

		env, err := hardhat.LoadEnv(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(env).To(Equal(map[string]string{
			"PRIVATE_KEY":  "0xabc",
			"AMOY_RPC_URL": "https://rpc-amoy.example.com",
		}))
	})

	It("fails when the file cannot be read", func() {
		_, err := hardhat.LoadEnv("/does/not/exist/.env")
		Expect(err).To(MatchError(ContainSubstring("failed to read env file /does/not/exist/.env")))
	})
})
