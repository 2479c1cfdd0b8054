package board

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/cli"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func TestBoardCmd_Flags(t *testing.T) {
	cmd := BoardCmd()
	f := cmd.Flags().Lookup("remote")
	require.NotNil(t, f)
	assert.Equal(t, fromConfig, f.NoOptDefVal)
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}

func TestBoardCmd_RemoteUnreachable(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	_, stderr, err := clitest.ExecuteCLICommandFull(t, app, BoardCmd(), []string{"--remote=" + addr})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCodeFor(err))
	assert.Contains(t, stderr, "no tablero server at "+addr)
	assert.Contains(t, stderr, "tablero serve")
}
