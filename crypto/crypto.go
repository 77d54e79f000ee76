package crypto

import (
	"golang.org/x/crypto/sha3"

	"github.com/pagehash/pagehash/crypto/sm3"
)

// Sm3 returns the SM3 digest of the concatenation of data.
func Sm3(data ...[]byte) []byte {
	var buf []byte
	for _, b := range data {
		buf = append(buf, b...)
	}
	d := sm3.Sum256(buf)
	return d[:]
}

// Sha3 returns the SHA3-256 digest of the concatenation of data. It
// is kept as the comparison baseline for the bench command.
func Sha3(data ...[]byte) []byte {
	d := sha3.New256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}
