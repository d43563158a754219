package ft8

/*-------------------------------------------------------------
 *
 * Purpose:	FT8 CRC-14.
 *
 * 		The 14 bit CRC inside the 91 bit systematic prefix is
 *		the end to end validity check after LDPC decoding,
 *		catching the rare codeword that satisfies all parity
 *		equations but is not the transmitted one.
 *
 *		Generator polynomial 0x2757, with the implied leading 1
 *		written out below.  Plain binary long division; FT8
 *		messages are far too short for table acceleration to
 *		matter.
 *
 *--------------------------------------------------------------*/

// 0x2757 with the leading 1.
var crc14_generator = [15]byte{1, 1, 0, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1}

/*-------------------------------------------------------------
 *
 * Name:	ft8_crc14
 *
 * Purpose:	Compute the CRC-14 of a bit string.
 *
 * Inputs:	msg - Message bits, one per byte, any length
 *		including zero.  Not modified.
 *
 * Returns:	The 14 CRC bits.
 *
 *--------------------------------------------------------------*/

func ft8_crc14(msg []byte) []byte {
	var scratch = make([]byte, len(msg)+FT8_CRC_BITS)
	copy(scratch, msg)

	for i := 0; i < len(msg); i++ {
		if scratch[i] != 0 {
			for k, g := range crc14_generator {
				scratch[i+k] ^= g
			}
		}
	}

	return scratch[len(msg):]
}

/*-------------------------------------------------------------
 *
 * Name:	ft8_crc_check
 *
 * Purpose:	Validate the 91 bit systematic prefix of a decoded
 *		codeword: 77 payload bits followed by their CRC-14.
 *
 *		The transmitted CRC is computed over the payload
 *		extended with five zero bits, a leftover of the
 *		protocol's earlier 75 bit message format, so the
 *		padding lives here and not in ft8_crc14.
 *
 * Inputs:	a91 - First 91 bits of a decoded codeword.
 *
 * Returns:	true if the CRC matches.
 *
 *--------------------------------------------------------------*/

func ft8_crc_check(a91 []byte) bool {
	var padded = make([]byte, FT8_PAYLOAD_BITS+5)
	copy(padded, a91[:FT8_PAYLOAD_BITS])

	var crc = ft8_crc14(padded)
	for i := 0; i < FT8_CRC_BITS; i++ {
		if crc[i] != a91[FT8_PAYLOAD_BITS+i] {
			return false
		}
	}
	return true
}
