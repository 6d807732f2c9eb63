package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisDashboardCacheFailsWithoutServer(t *testing.T) {
	c, err := NewRedisDashboardCache("127.0.0.1:1", "", 0, time.Second)

	assert.Nil(t, c)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
