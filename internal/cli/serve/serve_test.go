package serve

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/client"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRunServesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	db, err := database.OpenMemory(ctx)
	require.NoError(t, err)

	addr := freeAddr(t)
	done := make(chan error, 1)
	go func() { done <- Run(ctx, db, config.Default(), addr) }()

	c, err := client.New(addr)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return c.Health(ctx) == nil
	}, 5*time.Second, 20*time.Millisecond)

	projects, err := c.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
