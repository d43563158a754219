package ft8

/*-------------------------------------------------------------
 *
 * Name:	gauss_jordan
 *
 * Purpose:	Invert a 91x91 GF(2) submatrix chosen from a supply
 *		of 174 rows, for ordered statistics decoding.
 *
 * Inputs:	rows - Size of the square to invert.  Must be 91.
 *		cols - Number of supply rows.  Must be 174.
 *
 *		m - 174 rows by 182 columns.  Columns 0..90 hold one
 *		candidate row of the selection per matrix row, with
 *		the preferred 91 rows on top and the remaining 83
 *		below as spare equations.  Columns 91..181 must be
 *		zero on entry; the identity is created there lazily
 *		during elimination, so a scratch matrix reused across
 *		calls must have its right half cleared first.
 *
 *		which - One entry per matrix row recording which
 *		source row currently sits there.  Swapped alongside
 *		the rows, so on success the first 91 entries name the
 *		rows actually used as pivots.
 *
 * Returns:	1 on success, with the inverse of the pivoted 91x91
 *		selection in columns 91..181 of the first 91 rows.
 *		0 if no pivot could be found for some column, i.e.
 *		the supply itself is rank deficient there.  Contents
 *		of m and which are unspecified in that case.
 *
 * Description:	Standard in place GF(2) reduction.  The pivot scan
 *		runs over all 174 rows, not just the chosen 91, which
 *		is the whole point: the most reliable selection is
 *		often rank deficient and the fix is to borrow the next
 *		equation down.
 *
 *--------------------------------------------------------------*/

func gauss_jordan(rows int, cols int, m [][]byte, which []int) int {
	if rows != FT8_LDPC_K || cols != FT8_LDPC_N {
		panic("gauss_jordan: expected a 91 of 174 row selection")
	}
	if len(m) != cols || len(which) != cols {
		panic("gauss_jordan: matrix and row map must have 174 rows")
	}

	for row := 0; row < rows; row++ {
		if m[row][row] != 1 {
			for row1 := row + 1; row1 < cols; row1++ {
				if m[row1][row] == 1 {
					m[row], m[row1] = m[row1], m[row]
					which[row], which[row1] = which[row1], which[row]
					if ldpc_debug >= 2 && row1 >= rows {
						ldpc_log.Debug("gauss_jordan borrowed pivot", "col", row, "from", which[row])
					}
					break
				}
			}
			if m[row][row] != 1 {
				return 0
			}
		}

		m[row][rows+row] ^= 1

		for row1 := 0; row1 < cols; row1++ {
			if row1 != row && m[row1][row] == 1 {
				for col := 0; col < 2*rows; col++ {
					m[row1][col] ^= m[row][col]
				}
			}
		}
	}

	return 1
}
