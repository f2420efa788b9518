package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint computes a stable hash identifying a finding across runs.
func Fingerprint(ruleID, file string, line, column int, context string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d|%d|%s", ruleID, file, line, column, context)
	return hex.EncodeToString(h.Sum(nil))
}
