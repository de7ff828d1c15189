package verifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xPolygon/rsa-verifier/helper/hex"
	"github.com/0xPolygon/rsa-verifier/helper/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReadFixtureFile(t *testing.T) {
	t.Parallel()

	f := tests.SignRSA(t, tests.SharedRSAKey(t, 1024), []byte("hi man"))

	fixture := &Fixture{
		Name:      "hi man",
		Signature: hex.EncodeToHex(f.Signature),
		Digest:    f.Digest.String(),
		Exponent:  hex.EncodeToHex(f.Exponent),
		Modulus:   hex.EncodeToHex(f.Modulus),
	}

	data, err := yaml.Marshal(&FixtureFile{Fixtures: []*Fixture{fixture}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, data, 0600))

	fixtures, err := ReadFixtureFile(path)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	assert.Equal(t, fixture, fixtures[0])

	req, err := fixtures[0].ToRequest()
	require.NoError(t, err)
	assert.Equal(t, f.Signature, req.Signature)
	assert.Equal(t, f.Digest, req.Digest)
	assert.Equal(t, f.Exponent, req.Exponent)
	assert.Equal(t, f.Modulus, req.Modulus)
}

func TestReadFixtureFile_HCL(t *testing.T) {
	t.Parallel()

	content := `
fixtures = [
  {
    name      = "small"
    signature = "0x02"
    digest    = "0x0000000000000000000000000000000000000000000000000000000000000001"
    exponent  = "0x03"
    modulus   = "0x05"
  },
  {
    name      = "second"
    signature = "01"
    digest    = "0x0000000000000000000000000000000000000000000000000000000000000002"
    exponent  = "010001"
    modulus   = "0x07"
  },
]
`

	path := filepath.Join(t.TempDir(), "fixtures.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	fixtures, err := ReadFixtureFile(path)
	require.NoError(t, err)
	require.Len(t, fixtures, 2)
	assert.Equal(t, &Fixture{
		Name:      "small",
		Signature: "0x02",
		Digest:    "0x0000000000000000000000000000000000000000000000000000000000000001",
		Exponent:  "0x03",
		Modulus:   "0x05",
	}, fixtures[0])
	assert.Equal(t, "second", fixtures[1].Name)
	assert.Equal(t, "0x07", fixtures[1].Modulus)

	req, err := fixtures[1].ToRequest()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x01}, req.Exponent)
}

func TestFixture_ToRequestErrors(t *testing.T) {
	t.Parallel()

	valid := Fixture{
		Name:      "valid",
		Signature: "0x01",
		Digest:    "0x0000000000000000000000000000000000000000000000000000000000000001",
		Exponent:  "0x03",
		Modulus:   "0x05",
	}

	_, err := valid.ToRequest()
	require.NoError(t, err)

	short := valid
	short.Digest = "0x0102"

	badHex := valid
	badHex.Modulus = "0xzz"

	for _, f := range []Fixture{short, badHex} {
		f := f

		_, err := f.ToRequest()
		assert.ErrorIs(t, err, ErrInvalidFixture)
	}
}
