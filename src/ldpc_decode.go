package ft8

import (
	"math"
)

/*-------------------------------------------------------------
 *
 * Name:	ldpc_decode
 *
 * Purpose:	Belief propagation decoding of one FT8 codeword,
 *		working in probability space.
 *
 * Inputs:	llcodeword - 174 log likelihood ratios, one per
 *			codeword bit.  Positive means more likely 0.
 *			Not modified.
 *
 *		iters - Iteration budget.  0 is allowed and returns
 *			the plain sign decision of the input.
 *
 * Returns:	174 bit hard decision and the number of parity
 *		checks it satisfies.  83 means success; anything less
 *		is the best codeword seen before the budget ran out.
 *		The caller decides whether to retry, switch domains,
 *		or drop the frame.
 *
 * Description:	Message matrices are indexed [check][bit] but only
 *		the (check, bit) pairs listed in ldpc_nm are ever
 *		touched, so the dense layout just buys simple
 *		addressing.  m holds bit to check messages as
 *		P(bit=0), e holds check to bit messages the same way.
 *
 *		Messages driven to exactly zero by finite precision
 *		multiplication would otherwise divide out to NaN and
 *		poison a bit for the rest of the run, hence the q0
 *		guards below.
 *
 *--------------------------------------------------------------*/

func ldpc_decode(llcodeword []float64, iters int) ([]byte, int) {
	var m [FT8_LDPC_M][FT8_LDPC_N]float64 // bit to check, P(bit=0)
	var e [FT8_LDPC_M][FT8_LDPC_N]float64 // check to bit, P(bit=0)
	var codeword [FT8_LDPC_N]float64      // channel P(bit=0)
	var cw [FT8_LDPC_N]byte

	for i := 0; i < FT8_LDPC_N; i++ {
		codeword[i] = 1.0 / (1.0 + math.Exp(-llcodeword[i]))
	}

	for j := 0; j < FT8_LDPC_M; j++ {
		for _, v := range ldpc_nm[j] {
			if v > 0 {
				m[j][v-1] = codeword[v-1]
				e[j][v-1] = 0.0
			}
		}
	}

	// Best so far starts as the channel sign decision, which is also
	// what a zero iteration budget returns.
	var best_cw [FT8_LDPC_N]byte
	for i := 0; i < FT8_LDPC_N; i++ {
		if codeword[i] <= 0.5 {
			best_cw[i] = 1
		}
	}
	var best_score = ldpc_check(best_cw[:])
	if best_score == FT8_LDPC_M {
		return append([]byte(nil), best_cw[:]...), best_score
	}

	for iter := 0; iter < iters; iter++ {

		// Check node update.  Each check tells each of its bits what
		// the others imply, as a product of signed probabilities in
		// [-1, +1] where +1 is a certain 0.
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
					a *= 2.0*m[j][v2-1] - 1.0
				}
				e[j][i1] = (1.0 + a) / 2.0
			}
		}

		// Hard decision from channel plus all check messages.
		for i := 0; i < FT8_LDPC_N; i++ {
			var q0 = codeword[i]
			var q1 = 1.0 - codeword[i]
			for _, j := range ldpc_mn[i] {
				q0 *= e[j-1][i]
				q1 *= 1.0 - e[j-1][i]
			}
			var p float64
			if q0 == 0.0 {
				p = 1.0
			} else {
				p = q0 / (q0 + q1)
			}
			if p <= 0.5 {
				cw[i] = 1
			} else {
				cw[i] = 0
			}
		}

		var score = ldpc_check(cw[:])
		if score == FT8_LDPC_M {
			if ldpc_debug >= 1 {
				ldpc_log.Debug("ldpc_decode converged", "iter", iter+1)
			}
			return append([]byte(nil), cw[:]...), score
		}
		if score > best_score {
			best_score = score
			copy(best_cw[:], cw[:])
			if ldpc_debug >= 2 {
				ldpc_log.Debug("ldpc_decode new best", "iter", iter+1, "score", score)
			}
		}

		// Bit node update.  Each bit tells each of its checks what the
		// channel and the other checks imply.
		for i := 0; i < FT8_LDPC_N; i++ {
			for _, j1 := range ldpc_mn[i] {
				var q0 = codeword[i]
				var q1 = 1.0 - codeword[i]
				for _, j2 := range ldpc_mn[i] {
					if j2 == j1 {
						continue
					}
					q0 *= e[j2-1][i]
					q1 *= 1.0 - e[j2-1][i]
				}
				if q0 == 0.0 {
					m[j1-1][i] = 1.0
				} else {
					m[j1-1][i] = q0 / (q0 + q1)
				}
			}
		}
	}

	return append([]byte(nil), best_cw[:]...), best_score
}
