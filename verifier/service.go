// Package verifier exposes RSA PKCS#1 v1.5 SHA-256 verification behind a
// configurable exponentiation backend.
package verifier

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/rsa-verifier/chain"
	"github.com/0xPolygon/rsa-verifier/crypto/rsaverify"
	"github.com/0xPolygon/rsa-verifier/state/runtime/precompiled"
	"github.com/0xPolygon/rsa-verifier/types"
	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

const verifierMetrics = "verify"

// Verifier checks RSASSA-PKCS1-v1_5 signatures over SHA-256 digests.
// Arguments are always ordered (signature, digest, exponent, modulus).
type Verifier interface {
	Verify(signature []byte, digest types.Hash, exponent, modulus []byte) bool
	VerifyWithCost(signature []byte, digest types.Hash, exponent, modulus []byte) (bool, uint64)
}

var _ Verifier = (*Service)(nil)

// Request is a single verification request
type Request struct {
	Signature []byte
	Digest    types.Hash
	Exponent  []byte
	Modulus   []byte
}

// Response is the result of a single verification
type Response struct {
	Backend string `json:"backend"`
	Valid   bool   `json:"valid"`
	Cost    uint64 `json:"cost"`
}

// Service verifies signatures with the configured backend
type Service struct {
	logger   hclog.Logger
	config   *Config
	backend  rsaverify.Backend
	backends map[string]rsaverify.Backend
}

// NewService creates a verification service from the given configuration
func NewService(config *Config, logger hclog.Logger) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	forks, err := chain.ForksUpTo(config.Fork)
	if err != nil {
		return nil, err
	}

	backends := map[string]rsaverify.Backend{
		rsaverify.LibraryBackendName: rsaverify.NewLibraryBackend(),
		precompiled.ModExpBackendName: precompiled.NewModExpBackend(
			precompiled.NewPrecompiled(), forks.At(0), config.GasLimit),
	}

	backend, ok := backends[config.Backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, config.Backend)
	}

	s := &Service{
		logger:   logger.Named("verifier"),
		config:   config,
		backend:  backend,
		backends: backends,
	}

	s.logger.Debug("verifier initialized", "backend", backend.Name(), "fork", config.Fork, "workers", config.Workers)

	return s, nil
}

// Backend returns the name of the backend used by Verify and VerifyWithCost
func (s *Service) Backend() string {
	return s.backend.Name()
}

// Verify implements the Verifier interface
func (s *Service) Verify(signature []byte, digest types.Hash, exponent, modulus []byte) bool {
	ok, _ := s.VerifyWithCost(signature, digest, exponent, modulus)

	return ok
}

// VerifyWithCost implements the Verifier interface
func (s *Service) VerifyWithCost(signature []byte, digest types.Hash, exponent, modulus []byte) (bool, uint64) {
	return s.verify(s.backend, signature, digest, exponent, modulus)
}

func (s *Service) verify(
	backend rsaverify.Backend,
	signature []byte,
	digest types.Hash,
	exponent, modulus []byte,
) (bool, uint64) {
	defer metrics.MeasureSinceWithLabels([]string{verifierMetrics, "duration"}, time.Now(), backendLabels(backend))

	ok, cost := rsaverify.VerifyWithCost(backend, signature, digest[:], exponent, modulus)

	metrics.IncrCounterWithLabels([]string{verifierMetrics, "requests"}, 1, backendLabels(backend))
	metrics.AddSampleWithLabels([]string{verifierMetrics, "cost"}, float32(cost), backendLabels(backend))

	if !ok {
		metrics.IncrCounterWithLabels([]string{verifierMetrics, "invalid"}, 1, backendLabels(backend))
		s.logger.Trace("signature rejected", "backend", backend.Name(), "cost", cost)

		return false, cost
	}

	metrics.IncrCounterWithLabels([]string{verifierMetrics, "valid"}, 1, backendLabels(backend))

	return true, cost
}

// BatchVerify verifies the requests concurrently with at most the configured
// number of workers. Responses are returned in request order. A nil request is
// reported as an invalid signature.
func (s *Service) BatchVerify(ctx context.Context, reqs []*Request) ([]*Response, error) {
	responses := make([]*Response, len(reqs))

	err := s.runBatch(ctx, len(reqs), func(i int) {
		res := &Response{Backend: s.backend.Name()}

		if req := reqs[i]; req != nil {
			res.Valid, res.Cost = s.VerifyWithCost(req.Signature, req.Digest, req.Exponent, req.Modulus)
		}

		responses[i] = res
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("batch verified", "requests", len(reqs))

	return responses, nil
}

// BatchCompare runs Compare for every request with at most the configured
// number of workers. Results are returned in request order.
func (s *Service) BatchCompare(ctx context.Context, reqs []*Request) ([][]*Response, error) {
	responses := make([][]*Response, len(reqs))

	err := s.runBatch(ctx, len(reqs), func(i int) {
		responses[i] = s.Compare(reqs[i])
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("batch compared", "requests", len(reqs))

	return responses, nil
}

// runBatch calls fn for every index in [0, n) on a bounded pool of workers,
// stopping at the first cancellation of ctx
func (s *Service) runBatch(ctx context.Context, n int, fn func(i int)) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < n; i++ {
		i := i

		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
				fn(i)

				return nil
			}
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch verification aborted: %w", err)
	}

	return nil
}

// Compare runs the request against every supported backend, in the order given by Backends.
// A nil request is reported as an invalid signature by every backend.
func (s *Service) Compare(req *Request) []*Response {
	names := Backends()
	responses := make([]*Response, 0, len(names))

	for _, name := range names {
		backend := s.backends[name]

		if req == nil {
			responses = append(responses, &Response{Backend: backend.Name()})

			continue
		}

		ok, cost := s.verify(backend, req.Signature, req.Digest, req.Exponent, req.Modulus)
		responses = append(responses, &Response{
			Backend: backend.Name(),
			Valid:   ok,
			Cost:    cost,
		})
	}

	return responses
}

func backendLabels(backend rsaverify.Backend) []metrics.Label {
	return []metrics.Label{{Name: "backend", Value: backend.Name()}}
}
