package ft8

import (
	"math"
	"sort"
)

/*-------------------------------------------------------------
 *
 * Name:	osd_decode
 *
 * Purpose:	Ordered statistics fallback for codewords that belief
 *		propagation gives up on.
 *
 *		Rank all 174 bits by |LLR|, take the 91 the
 *		demodulator is most sure about, and invert that
 *		selection of generator rows with gauss_jordan.  The
 *		inverse maps those 91 hard decisions straight to a
 *		candidate message, and re-encoding the message yields a
 *		codeword that satisfies every parity check by
 *		construction.  Whether it is the transmitted one is up
 *		to the CRC.
 *
 * Inputs:	llcodeword - 174 log likelihood ratios.  Not modified.
 *
 *		depth - How many of the least reliable selected
 *			positions to additionally try with their hard
 *			decision flipped, one at a time.  0 tries only
 *			the plain selection.
 *
 * Returns:	The 91 bit systematic prefix (77 payload + 14 CRC
 *		bits) of the best candidate, and true if that
 *		candidate passed the CRC.  On false the caller gets
 *		the candidate whose re-encoding best agrees with the
 *		received soft bits, for whatever it is worth.
 *
 *--------------------------------------------------------------*/

func osd_decode(llcodeword []float64, depth int) ([]byte, bool) {
	var hard [FT8_LDPC_N]byte
	for i := 0; i < FT8_LDPC_N; i++ {
		if llcodeword[i] <= 0.0 {
			hard[i] = 1
		}
	}

	// Codeword positions, most reliable first.
	var order = make([]int, FT8_LDPC_N)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a int, b int) bool {
		return math.Abs(llcodeword[order[a]]) > math.Abs(llcodeword[order[b]])
	})

	// One generator row per codeword position: systematic positions
	// are unit vectors, parity positions come from ldpc_gen.  Laid
	// out in reliability order with the right half zeroed for
	// gauss_jordan's lazily built identity.
	var m = make([][]byte, FT8_LDPC_N)
	var which = make([]int, FT8_LDPC_N)
	for r := 0; r < FT8_LDPC_N; r++ {
		m[r] = make([]byte, 2*FT8_LDPC_K)
		var src = order[r]
		which[r] = src
		if src < FT8_LDPC_K {
			m[r][src] = 1
		} else {
			copy(m[r][:FT8_LDPC_K], ldpc_gen[src-FT8_LDPC_K][:])
		}
	}

	if gauss_jordan(FT8_LDPC_K, FT8_LDPC_N, m, which) == 0 {
		return nil, false
	}

	var c_sel = make([]byte, FT8_LDPC_K)
	for r := 0; r < FT8_LDPC_K; r++ {
		c_sel[r] = hard[which[r]]
	}

	// Pivot borrowing reorders the selection, so the flip patterns
	// walk the pivot rows by reliability of the source bit they ended
	// up holding, least reliable first.
	var rel = make([]int, FT8_LDPC_K)
	for r := range rel {
		rel[r] = r
	}
	sort.Slice(rel, func(a int, b int) bool {
		return math.Abs(llcodeword[which[rel[a]]]) < math.Abs(llcodeword[which[rel[b]]])
	})

	if depth < 0 {
		depth = 0
	}
	if depth > FT8_LDPC_K-1 {
		depth = FT8_LDPC_K - 1
	}

	var best_plain []byte
	var best_score = math.Inf(-1)

	for d := 0; d <= depth; d++ {
		if d > 0 {
			c_sel[rel[d-1]] ^= 1
		}
		var plain = osd_candidate(m, c_sel)
		if d > 0 {
			c_sel[rel[d-1]] ^= 1
		}

		if ft8_crc_check(plain) {
			if ldpc_debug >= 1 {
				ldpc_log.Debug("osd_decode CRC pass", "pattern", d)
			}
			return plain, true
		}

		// No CRC: keep the candidate whose codeword best agrees with
		// the soft input, weighting each position by its reliability.
		var codeword = ldpc_encode(plain)
		var score = 0.0
		for i := 0; i < FT8_LDPC_N; i++ {
			if codeword[i] == hard[i] {
				score += math.Abs(llcodeword[i])
			} else {
				score -= math.Abs(llcodeword[i])
			}
		}
		if score > best_score {
			best_score = score
			best_plain = plain
		}
		if ldpc_debug >= 2 {
			ldpc_log.Debug("osd_decode candidate", "pattern", d, "score", score)
		}
	}

	return best_plain, false
}

// Apply the inverse sitting in the right half of m's first 91 rows to
// the selected hard decisions, giving one candidate message.
func osd_candidate(m [][]byte, c_sel []byte) []byte {
	var plain = make([]byte, FT8_LDPC_K)
	for k := 0; k < FT8_LDPC_K; k++ {
		var x byte = 0
		for r := 0; r < FT8_LDPC_K; r++ {
			x ^= m[k][FT8_LDPC_K+r] & c_sel[r]
		}
		plain[k] = x
	}
	return plain
}
