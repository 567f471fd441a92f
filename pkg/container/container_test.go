package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/config"
)

func TestNewContainer_Memory(t *testing.T) {
	cfg := &config.Config{
		App:   config.AppConfig{Environment: "test", Port: "0"},
		Store: config.StoreConfig{Driver: config.DriverMemory},
	}

	c, err := NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Cleanup()

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Redis)
	assert.NotNil(t, c.AuthorHandler)
	assert.NotNil(t, c.BookHandler)
	assert.NotNil(t, c.BookInstanceHandler)
	assert.NoError(t, c.HealthCheck(context.Background()))

	out, err := c.BookInstanceService.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bookinstance_list", out.View)

	c.Cleanup()
}

func TestNewContainer_UnknownDriver(t *testing.T) {
	_, err := NewContainer(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "mongo"}})
	assert.Error(t, err)
}
