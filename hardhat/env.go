package hardhat

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadEnv reads a dotenv file for the deployment script. An empty path means
// no extra environment.
func LoadEnv(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read env file %s", path)
	}
	return env, nil
}
