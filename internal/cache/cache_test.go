package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/solscan/internal/cache"
)

func TestKeyDeterministic(t *testing.T) {
	a := cache.Key("scan-v1", "bank.sol", "contract Bank {}")
	b := cache.Key("scan-v1", "bank.sol", "contract Bank {}")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	assert.NotEqual(t, a, cache.Key("scan-v2", "bank.sol", "contract Bank {}"))
	assert.NotEqual(t, a, cache.Key("scan-v1", "bank.sol", "contract Bank { }"))
}

func TestStoreLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	key := cache.Key("scan-v1", "roundtrip.sol")
	_, ok := cache.Load(key)
	assert.False(t, ok)

	require.NoError(t, cache.Store(key, []byte(`[{"ruleId":"SOL-REENTRANCY"}]`)))
	got, ok := cache.Load(key)
	require.True(t, ok)
	assert.JSONEq(t, `[{"ruleId":"SOL-REENTRANCY"}]`, string(got))
}
