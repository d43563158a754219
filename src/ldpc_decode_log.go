package ft8

import (
	"math"
)

/*-------------------------------------------------------------
 *
 * Name:	ldpc_decode_log
 *
 * Purpose:	Belief propagation decoding of one FT8 codeword,
 *		working with log likelihood ratios throughout.
 *
 *		Same contract as ldpc_decode.  The log domain is the
 *		one to prefer: confident bits that would underflow to
 *		0 or 1 in probability space stay finite here, and the
 *		bit node update becomes plain addition.
 *
 * Inputs:	llcodeword - 174 log likelihood ratios.  Not modified.
 *		iters - Iteration budget, 0 allowed.
 *
 * Returns:	174 bit hard decision and its parity check count.
 *
 * Description:	Check node update uses the tanh product rule.  The
 *		product of per bit tanh values is mapped back with
 *		2*atanh, clamped to +/- 7.6 once the product leaves
 *		the region where fast_tanh is trustworthy.
 *
 *--------------------------------------------------------------*/

func ldpc_decode_log(llcodeword []float64, iters int) ([]byte, int) {
	var m [FT8_LDPC_M][FT8_LDPC_N]float64 // bit to check LLRs
	var e [FT8_LDPC_M][FT8_LDPC_N]float64 // check to bit LLRs
	var cw [FT8_LDPC_N]byte

	for j := 0; j < FT8_LDPC_M; j++ {
		for _, v := range ldpc_nm[j] {
			if v > 0 {
				m[j][v-1] = llcodeword[v-1]
				e[j][v-1] = 0.0
			}
		}
	}

	var best_cw [FT8_LDPC_N]byte
	for i := 0; i < FT8_LDPC_N; i++ {
		if llcodeword[i] <= 0.0 {
			best_cw[i] = 1
		}
	}
	var best_score = ldpc_check(best_cw[:])
	if best_score == FT8_LDPC_M {
		return append([]byte(nil), best_cw[:]...), best_score
	}

	for iter := 0; iter < iters; iter++ {

		// Check node update: tanh product rule.
		for j := 0; j < FT8_LDPC_M; j++ {
			for _, v1 := range ldpc_nm[j] {
				if v1 == 0 {
					continue
				}
				var i1 = v1 - 1
				var a = 1.0
				for _, v2 := range ldpc_nm[j] {
					if v2 == 0 || v2 == v1 {
						continue
					}
					a *= fast_tanh(m[j][v2-1] / 2.0)
				}
				if a >= 0.999 {
					e[j][i1] = 7.6
				} else if a <= -0.999 {
					e[j][i1] = -7.6
				} else {
					e[j][i1] = math.Log((1.0 + a) / (1.0 - a))
				}
			}
		}

		for i := 0; i < FT8_LDPC_N; i++ {
			var l = llcodeword[i]
			for _, j := range ldpc_mn[i] {
				l += e[j-1][i]
			}
			if l <= 0.0 {
				cw[i] = 1
			} else {
				cw[i] = 0
			}
		}

		var score = ldpc_check(cw[:])
		if score == FT8_LDPC_M {
			if ldpc_debug >= 1 {
				ldpc_log.Debug("ldpc_decode_log converged", "iter", iter+1)
			}
			return append([]byte(nil), cw[:]...), score
		}
		if score > best_score {
			best_score = score
			copy(best_cw[:], cw[:])
			if ldpc_debug >= 2 {
				ldpc_log.Debug("ldpc_decode_log new best", "iter", iter+1, "score", score)
			}
		}

		// Bit node update: channel LLR plus the other checks.
		for i := 0; i < FT8_LDPC_N; i++ {
			for _, j1 := range ldpc_mn[i] {
				var l = llcodeword[i]
				for _, j2 := range ldpc_mn[i] {
					if j2 != j1 {
						l += e[j2-1][i]
					}
				}
				m[j1-1][i] = l
			}
		}
	}

	return append([]byte(nil), best_cw[:]...), best_score
}
