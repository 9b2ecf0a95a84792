package notifier

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	codeMin  = 100000
	codeSpan = 900000 // codes are drawn from [codeMin, codeMin+codeSpan)
)

var codeSpanBig = big.NewInt(codeSpan)

// GenerateCode returns a uniformly random 6-digit verification code in
// [100000, 999999]. The code is not stored; expiry and persistence belong to
// the caller.
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, codeSpanBig)
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic("notifier: crypto/rand failed: " + err.Error())
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10)
}
