package ft8

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestLDPCCheckAllZeros(t *testing.T) {
	var cw = make([]byte, FT8_LDPC_N)
	assert.Equal(t, FT8_LDPC_M, ldpc_check(cw))
}

func TestLDPCCheckSingleFlip(t *testing.T) {
	// Each bit sits in exactly three checks, so flipping any single
	// bit of a valid codeword must break exactly three equations.
	for i := 0; i < FT8_LDPC_N; i++ {
		var cw = make([]byte, FT8_LDPC_N)
		cw[i] = 1
		assert.Equal(t, FT8_LDPC_M-3, ldpc_check(cw), "bit %d", i)
	}
}

func TestLDPCCheckAgainstDenseMatrix(t *testing.T) {
	var h = test_parity_rows()

	rapid.Check(t, func(t *rapid.T) {
		var cw = rapid.SliceOfN(rapid.Byte(), FT8_LDPC_N, FT8_LDPC_N).Draw(t, "cw")
		for i := range cw {
			cw[i] &= 1
		}

		var want = 0
		for j := 0; j < FT8_LDPC_M; j++ {
			var x byte = 0
			for i := 0; i < FT8_LDPC_N; i++ {
				x ^= h[j][i] & cw[i]
			}
			if x == 0 {
				want++
			}
		}

		assert.Equal(t, want, ldpc_check(cw))
	})
}

func TestFastTanhAccuracy(t *testing.T) {
	// Tight in the range BP messages actually live in, and the error
	// stays below the clamp threshold's tolerance over the full span.
	for x := -5.0; x <= 5.0; x += 0.001 {
		assert.InDelta(t, math.Tanh(x), fast_tanh(x), 1.2e-4, "x=%f", x)
	}
	for x := -7.6; x <= 7.6; x += 0.001 {
		assert.InDelta(t, math.Tanh(x), fast_tanh(x), 2.0e-3, "x=%f", x)
	}
}

func TestFastTanhSaturation(t *testing.T) {
	assert.Equal(t, 0.999, fast_tanh(7.61))
	assert.Equal(t, -0.999, fast_tanh(-7.61))
	assert.Equal(t, 0.999, fast_tanh(100.0))
	assert.Equal(t, -0.999, fast_tanh(-100.0))
	assert.Equal(t, 0.0, fast_tanh(0.0))
}

func TestFastTanhOdd(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var x = rapid.Float64Range(0.0, 50.0).Draw(t, "x")
		assert.Equal(t, -fast_tanh(x), fast_tanh(-x))
	})
}
