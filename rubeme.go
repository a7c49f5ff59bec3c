// package rubeme holds module-wide constants and the hash function used to
// fingerprint Scheme values.
package rubeme

import (
	"fmt"
	"strings"

	"lukechampine.com/blake3"
)

const (
	Version = "0.1.0"
	Release = "2021-06-10"
)

// HashSize is the size of the output of Hash in bytes.
const HashSize = 32

// Hash calculates the hash of x.
// If tag == nil, then the hash is unkeyed.
// If tag != nil, then the hash will be keyed with the tag.
func Hash(tag *[HashSize]byte, x []byte) (ret [HashSize]byte) {
	var key []byte
	if tag != nil {
		key = tag[:]
	}
	h := blake3.New(HashSize, key)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}

// MakeVersion renders the version of the named component as an s-expression.
// "Rubeme::Scm" becomes "(rubeme.scm :version 0.1.0 :release 2021-06-10)".
func MakeVersion(name string) string {
	parts := strings.Split(strings.ToLower(name), "::")
	return fmt.Sprintf("(%s :version %s :release %s)", strings.Join(parts, "."), Version, Release)
}
