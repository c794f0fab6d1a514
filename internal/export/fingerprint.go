package export

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of the written document, for
// comparing a generated export against what was imported downstream.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(doc []byte) string {
	sum := blake2b.Sum256(doc)
	return hex.EncodeToString(sum[:10])
}
