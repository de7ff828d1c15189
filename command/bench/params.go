package bench

import (
	"errors"

	"github.com/0xPolygon/rsa-verifier/command/helper"
)

const (
	fixturesFlag    = "fixtures"
	metricsFileFlag = "metrics-file"
)

var errNoFixtures = errors.New("fixtures file is required, either through --fixtures or the config file")

type benchParams struct {
	fixturesPath string
	metricsFile  string

	verifierFlags helper.VerifierFlags
}

// resolveFixtures returns the fixture path, falling back to the one from the config file
func (p *benchParams) resolveFixtures(configFixtures string) (string, error) {
	if p.fixturesPath != "" {
		return p.fixturesPath, nil
	}

	if configFixtures != "" {
		return configFixtures, nil
	}

	return "", errNoFixtures
}
