package ft8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCRC14AllZeroMessage(t *testing.T) {
	assert.Equal(t, make([]byte, FT8_CRC_BITS), ft8_crc14(make([]byte, FT8_PAYLOAD_BITS)))
}

func TestCRC14EmptyMessage(t *testing.T) {
	assert.Equal(t, make([]byte, FT8_CRC_BITS), ft8_crc14(nil))
}

func TestCRC14KnownVectors(t *testing.T) {
	// A single 1 in the last position divides out to the generator
	// itself, minus its leading bit: the 14 bits of 0x2757.
	var msg = make([]byte, FT8_PAYLOAD_BITS)
	msg[FT8_PAYLOAD_BITS-1] = 1
	assert.Equal(t,
		[]byte{1, 0, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1},
		ft8_crc14(msg))

	// A single 1 in the first position exercises the full division.
	var msg2 = make([]byte, FT8_PAYLOAD_BITS)
	msg2[0] = 1
	assert.Equal(t,
		[]byte{0, 1, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 0},
		ft8_crc14(msg2))
}

func TestCRC14DivisionProperty(t *testing.T) {
	// Appending the CRC to the message must leave a multiple of the
	// generator polynomial.  Checked with an independent remainder
	// computation over msg || crc.
	rapid.Check(t, func(t *rapid.T) {
		var msg = rapid.SliceOf(rapid.Byte()).Draw(t, "msg")
		for i := range msg {
			msg[i] &= 1
		}

		var full = append(append([]byte(nil), msg...), ft8_crc14(msg)...)
		for i := 0; i+len(crc14_generator) <= len(full); i++ {
			if full[i] != 0 {
				for k, g := range crc14_generator {
					full[i+k] ^= g
				}
			}
		}
		assert.Equal(t, make([]byte, len(full)), full)
	})
}

func TestCRC14DoesNotMutateInput(t *testing.T) {
	var msg = []byte{1, 0, 1, 1, 0, 0, 1}
	var saved = append([]byte(nil), msg...)
	ft8_crc14(msg)
	assert.Equal(t, saved, msg)
}

func TestCRCCheckRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var payload = rapid.SliceOfN(rapid.Byte(), FT8_PAYLOAD_BITS, FT8_PAYLOAD_BITS).Draw(t, "payload")
		for i := range payload {
			payload[i] &= 1
		}

		var a91 = test_make_a91(payload)
		require.Len(t, a91, FT8_LDPC_K)
		assert.True(t, ft8_crc_check(a91))

		// Any single flipped bit must be caught.
		var flip = rapid.IntRange(0, FT8_LDPC_K-1).Draw(t, "flip")
		a91[flip] ^= 1
		assert.False(t, ft8_crc_check(a91))
	})
}
