package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeHex verifies that optional prefixes
// and odd length inputs are decoded
func TestDecodeHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected []byte
	}{
		{"0x010001", []byte{0x01, 0x00, 0x01}},
		{"010001", []byte{0x01, 0x00, 0x01}},
		{"0x10001", []byte{0x01, 0x00, 0x01}},
		{"0x", []byte{}},
		{"", []byte{}},
	}

	for _, c := range cases {
		buf, err := DecodeHex(c.input)
		require.NoError(t, err)
		assert.Equal(t, c.expected, buf, c.input)
	}

	_, err := DecodeHex("0xzz")
	assert.Error(t, err)
}

func TestMustDecodeHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{0xde, 0xad}, MustDecodeHex("0xdead"))
	assert.Panics(t, func() {
		MustDecodeHex("0xnothex")
	})
}

func TestEncodeToHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0x010001", EncodeToHex([]byte{0x01, 0x00, 0x01}))
	assert.Equal(t, "0x", EncodeToHex(nil))
}
