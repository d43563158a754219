package ft8

/*-------------------------------------------------------------
 *
 * Name:	ldpc_check
 *
 * Purpose:	Count how many of the 83 parity equations a hard
 *		decision codeword satisfies.
 *
 * Inputs:	codeword - 174 bits, values 0 or 1.
 *
 * Returns:	Number of satisfied checks, 0 to 83.
 *		83 means the codeword is valid.
 *
 *--------------------------------------------------------------*/

func ldpc_check(codeword []byte) int {
	var score = 0

	for j := 0; j < FT8_LDPC_M; j++ {
		var x byte = 0
		for _, i := range ldpc_nm[j] {
			if i > 0 {
				x ^= codeword[i-1]
			}
		}
		if x == 0 {
			score++
		}
	}

	return score
}

/*-------------------------------------------------------------
 *
 * Name:	fast_tanh
 *
 * Purpose:	Rational polynomial approximation of tanh(x) for the
 *		log domain decoder's inner loop.  Much cheaper than
 *		math.Tanh and accurate to a few decimals in the range
 *		the decoder actually uses.
 *
 *		Outside +/- 7.6 the result saturates to +/- 0.999,
 *		matching the clamps applied when converting check
 *		messages back with the inverse.
 *
 *--------------------------------------------------------------*/

func fast_tanh(x float64) float64 {
	if x < -7.6 {
		return -0.999
	}
	if x > 7.6 {
		return 0.999
	}

	var x2 = x * x
	var a = x * (135135.0 + x2*(17325.0+x2*(378.0+x2)))
	var b = 135135.0 + x2*(62370.0+x2*(3150.0+28.0*x2))
	return a / b
}
