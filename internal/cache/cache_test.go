package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"staffdir/internal/logging"
)

func TestNew_EmptyAddrDisablesCache(t *testing.T) {
	assert.Nil(t, New("", "", 0, time.Minute))
}

func TestNilClientIsEmptyCache(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "department:1")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "department:1", []byte("{}")))
	assert.NoError(t, c.Delete(ctx, "department:1"))

	var dst map[string]interface{}
	assert.False(t, c.GetJSON(ctx, "department:1", &dst))
	c.SetJSON(ctx, "department:1", dst)
	assert.NoError(t, c.Close())
}

func TestUnreachableRedisFailsSafe(t *testing.T) {
	c := New("127.0.0.1:1", "", 0, time.Minute)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.Get(ctx, "user:1")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "user:1", []byte("{}")))
	assert.NoError(t, c.Delete(ctx, "user:1"))
}

func TestJSONRoundTripWithTTL(t *testing.T) {
	rdb := miniredis.RunT(t)
	c := New(rdb.Addr(), "", 0, 30*time.Second)
	defer c.Close()
	ctx := context.Background()

	c.SetJSON(ctx, "department:1", map[string]interface{}{"id": 1, "departmentName": "Engineering"})

	var got map[string]interface{}
	require.True(t, c.GetJSON(ctx, "department:1", &got))
	assert.Equal(t, "Engineering", got["departmentName"])
	assert.Equal(t, 30*time.Second, rdb.TTL("department:1"))

	require.NoError(t, c.Delete(ctx, "department:1"))
	assert.False(t, rdb.Exists("department:1"))
}

func TestJSONCodecFailuresAreLoggedMisses(t *testing.T) {
	rdb := miniredis.RunT(t)
	c := New(rdb.Addr(), "", 0, time.Minute)
	defer c.Close()
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logging.NewContext(context.Background(), zap.New(core))

	require.NoError(t, rdb.Set("user:1", "{broken"))
	var dst map[string]interface{}
	assert.False(t, c.GetJSON(ctx, "user:1", &dst))

	c.SetJSON(ctx, "user:2", func() {})
	assert.False(t, rdb.Exists("user:2"))

	assert.Equal(t, 1, logs.FilterMessage("cache decode failed").FilterField(zap.String("key", "user:1")).Len())
	assert.Equal(t, 1, logs.FilterMessage("cache encode failed").FilterField(zap.String("key", "user:2")).Len())
}
