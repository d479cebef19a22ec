// Package code generates human-readable item codes. A code is a timestamp
// prefix in YYMMDD-HHMM format followed by a random alphanumeric suffix,
// e.g. "260828-1542-kX7Qp2mRa9Lw". The suffix alone carries roughly 71 bits
// of entropy, so same-minute collisions are vanishingly unlikely; the store
// additionally enforces uniqueness with a database constraint.
package code

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

// SuffixLength is the number of random characters after the timestamp prefix.
const SuffixLength = 12

// suffixCharset is the alphabet for the random suffix.
const suffixCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var codePattern = regexp.MustCompile(`^\d{6}-\d{4}-[A-Za-z0-9]{12}$`)

// Generate returns a new item code for the current time.
func Generate() (string, error) {
	return GenerateAt(time.Now())
}

// GenerateAt returns a new item code with the timestamp prefix taken from t.
func GenerateAt(t time.Time) (string, error) {
	suffix := make([]byte, SuffixLength)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixCharset))))
		if err != nil {
			return "", fmt.Errorf("generating code suffix: %w", err)
		}
		suffix[i] = suffixCharset[n.Int64()]
	}
	return t.Format("060102-1504") + "-" + string(suffix), nil
}

// Valid reports whether s matches the canonical item code pattern.
func Valid(s string) bool {
	return codePattern.MatchString(s)
}
