package usecase

import (
	"crypto/rand"
	"strings"
)

// codeAlphabet are the characters used in meeting codes.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// codeLength is the number of random characters per code.
const codeLength = 9

// newMeetingCode generates a meeting code of nine random alphanumeric
// characters chunked into groups of three, e.g. "A1b-2C3-d4E".
func newMeetingCode() string {
	buf := make([]byte, codeLength)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	var sb strings.Builder
	for i := 0; i < codeLength; i += 3 {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.Write(buf[i : i+3])
	}
	return sb.String()
}
