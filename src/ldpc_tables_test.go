package ft8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParityTableRowShape(t *testing.T) {
	for j, row := range ldpc_nm {
		var seen = make(map[int]bool)
		var weight = 0
		for _, v := range row {
			if v == 0 {
				continue
			}
			weight++
			assert.GreaterOrEqual(t, v, 1, "check %d", j)
			assert.LessOrEqual(t, v, FT8_LDPC_N, "check %d", j)
			assert.False(t, seen[v], "check %d lists bit %d twice", j, v)
			seen[v] = true
		}
		// The code has weight 6 and weight 7 checks only.
		assert.Contains(t, []int{6, 7}, weight, "check %d", j)
	}
}

func TestParityTableColumnDegree(t *testing.T) {
	// Every codeword bit takes part in exactly three checks.
	var degree [FT8_LDPC_N + 1]int
	for _, row := range ldpc_nm {
		for _, v := range row {
			if v > 0 {
				degree[v]++
			}
		}
	}
	for v := 1; v <= FT8_LDPC_N; v++ {
		assert.Equal(t, 3, degree[v], "bit %d", v)
	}
}

func TestParityTablesAgree(t *testing.T) {
	// ldpc_mn must be exactly the transposed view of ldpc_nm.
	var derived [FT8_LDPC_N][]int
	for j, row := range ldpc_nm {
		for _, v := range row {
			if v > 0 {
				derived[v-1] = append(derived[v-1], j+1)
			}
		}
	}
	for i := 0; i < FT8_LDPC_N; i++ {
		assert.Equal(t, derived[i], ldpc_mn[i][:], "bit %d", i)
	}
}
