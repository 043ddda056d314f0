package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// HashPin hashes an access PIN as base64(sha256(pin)).
func HashPin(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func VerifyPin(pin, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPin(pin)), []byte(hash)) == 1
}
