package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()

	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("format.width", 12)
	require.NoError(t, err)

	val, ok := store.Get("format.width")
	assert.True(t, ok)
	assert.Equal(t, 12, val)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("format.fill", "-"))
	require.NoError(t, store.Set("format.fill", "="))

	assert.Equal(t, "=", store.GetString("format.fill"))
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("format.width", 42)

	assert.Equal(t, "", store.GetString("format.width"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt_Conversions(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("as_int", 7)
	_ = store.Set("as_int64", int64(8))
	_ = store.Set("as_float", 9.0)
	_ = store.Set("as_string", "10")

	assert.Equal(t, 7, store.GetInt("as_int"))
	assert.Equal(t, 8, store.GetInt("as_int64"))
	assert.Equal(t, 9, store.GetInt("as_float"))
	assert.Equal(t, 0, store.GetInt("as_string"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("flag", true)

	assert.True(t, store.GetBool("flag"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_SaveAndLoad_NoOps(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "", store.Path())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("format.width", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("format.width")
		}()
	}
	wg.Wait()

	_, ok := store.Get("format.width")
	assert.True(t, ok)
}
