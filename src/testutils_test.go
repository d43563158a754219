package ft8

// Shared fixtures and GF(2) reference helpers for the decoder tests.

// Parity check matrix as dense rows, built from ldpc_nm the long way
// round so table mistakes cannot hide behind the decoder's own
// indexing.
func test_parity_rows() [][]byte {
	var h = make([][]byte, FT8_LDPC_M)
	for j := 0; j < FT8_LDPC_M; j++ {
		h[j] = make([]byte, FT8_LDPC_N)
		for _, v := range ldpc_nm[j] {
			if v > 0 {
				h[j][v-1] = 1
			}
		}
	}
	return h
}

// Generator row for codeword position i: systematic positions are unit
// vectors, parity positions come from ldpc_gen.
func test_gen_row(i int) []byte {
	var row = make([]byte, FT8_LDPC_K)
	if i < FT8_LDPC_K {
		row[i] = 1
	} else {
		copy(row, ldpc_gen[i-FT8_LDPC_K][:])
	}
	return row
}

// Append the transmitted CRC to a 77 bit payload, using the protocol's
// five zero bit extension.
func test_make_a91(payload []byte) []byte {
	var padded = make([]byte, FT8_PAYLOAD_BITS+5)
	copy(padded, payload)
	var a91 = make([]byte, 0, FT8_LDPC_K)
	a91 = append(a91, payload...)
	a91 = append(a91, ft8_crc14(padded)...)
	return a91
}

// Saturated LLRs for a codeword: +mag where the bit is 0, -mag where 1.
func test_llrs(codeword []byte, mag float64) []float64 {
	var llrs = make([]float64, len(codeword))
	for i, b := range codeword {
		if b == 0 {
			llrs[i] = mag
		} else {
			llrs[i] = -mag
		}
	}
	return llrs
}

// Hard decision by sign, the decoders' starting point.
func test_sign_decode(llrs []float64) []byte {
	var hard = make([]byte, len(llrs))
	for i, l := range llrs {
		if l <= 0.0 {
			hard[i] = 1
		}
	}
	return hard
}
