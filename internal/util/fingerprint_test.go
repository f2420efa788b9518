package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xab-mack/solscan/internal/util"
)

func TestFingerprintStable(t *testing.T) {
	a := util.Fingerprint("SOL-REENTRANCY", "bank.sol", 6, 5, "msg")
	b := util.Fingerprint("SOL-REENTRANCY", "bank.sol", 6, 5, "msg")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprintDistinguishesInputs(t *testing.T) {
	base := util.Fingerprint("SOL-REENTRANCY", "bank.sol", 6, 5, "msg")
	assert.NotEqual(t, base, util.Fingerprint("SOL-TX-ORIGIN", "bank.sol", 6, 5, "msg"))
	assert.NotEqual(t, base, util.Fingerprint("SOL-REENTRANCY", "other.sol", 6, 5, "msg"))
	assert.NotEqual(t, base, util.Fingerprint("SOL-REENTRANCY", "bank.sol", 7, 5, "msg"))
	assert.NotEqual(t, base, util.Fingerprint("SOL-REENTRANCY", "bank.sol", 6, 5, "other"))
}
