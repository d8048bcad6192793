package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionStoreWithClientDefaults(t *testing.T) {
	store := NewSessionStoreWithClient(nil, "", 12*time.Hour)
	assert.Equal(t, "session:", store.keyPrefix)
	assert.Equal(t, 12*time.Hour, store.ttl)

	custom := NewSessionStoreWithClient(nil, "bmp:", time.Hour)
	assert.Equal(t, "bmp:", custom.keyPrefix)
}
