package ft8

// SPDX-FileCopyrightText: The Laika Authors

/*-------------------------------------------------------------
 *
 * Purpose:	Forward error correction core for the FT8 digital mode.
 *
 *		This package holds the pieces between the demodulator
 *		and the message unpacker: soft decision decoding of the
 *		(174,91) LDPC code, the FT8 CRC-14, a systematic
 *		encoder, and an ordered statistics fallback built on a
 *		GF(2) Gauss-Jordan inverter.
 *
 *		The demodulator hands us one log likelihood ratio per
 *		codeword bit, log(P(bit=0)/P(bit=1)), so positive means
 *		the bit is more likely 0.  We hand back a 174 bit hard
 *		decision and the number of satisfied parity checks.
 *		83 satisfied checks means a structurally valid codeword;
 *		the CRC-14 inside the 91 bit systematic prefix is the
 *		final verdict.
 *
 * Reference:	The FT4 and FT8 Communication Protocols.
 *		Franke (K9AN), Somerville (G4WJS), Taylor (K1JT).
 *		QEX July/August 2020.
 *
 *--------------------------------------------------------------*/

import (
	"os"

	"github.com/charmbracelet/log"
)

const FT8_LDPC_N = 174 // Codeword bits.
const FT8_LDPC_M = 83  // Parity checks.
const FT8_LDPC_K = 91  // Systematic prefix: 77 payload bits + 14 CRC bits.

const FT8_PAYLOAD_BITS = 77
const FT8_CRC_BITS = 14

var ldpc_debug = 0

var ldpc_log = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ft8"})

/*-------------------------------------------------------------
 *
 * Name:	ldpc_init
 *
 * Purpose:	Set the level of informational / debug messages
 *		from the decoders.
 *
 * Inputs:	debug_level -
 *			0 (default)	Errors only.
 *			1		Successful decodes.
 *			2		Per call progress: best score per
 *					iteration, OSD pivot borrowing.
 *
 *--------------------------------------------------------------*/

func ldpc_init(debug_level int) {
	ldpc_debug = debug_level
	if debug_level >= 1 {
		ldpc_log.SetLevel(log.DebugLevel)
	} else {
		ldpc_log.SetLevel(log.InfoLevel)
	}
}
