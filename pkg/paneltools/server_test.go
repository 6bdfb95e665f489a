package paneltools

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logBuffer is a bytes.Buffer safe for the server goroutine to write to.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// connect runs a Server for a test panel on an in-memory transport and
// returns a connected client session plus the server's log output.
func connect(t *testing.T) (*mcp.ClientSession, *logBuffer) {
	t.Helper()

	p, _ := newPanel(t)
	logs := &logBuffer{}
	s := NewServer(p, "0.0.0", zerolog.New(logs))

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- s.serve(ctx, serverTransport)
	}()
	t.Cleanup(func() {
		cancel()
		<-serverDone
	})

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session, logs
}

func TestServer_ListTools(t *testing.T) {
	session, _ := connect(t)

	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"list_providers", "list_models", "select_model", "set_parameter", "get_config"}, names)
}

func TestServer_CallTool(t *testing.T) {
	session, logs := connect(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "set_parameter",
		Arguments: map[string]any{"field": "history_message_count", "value": 100},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	tc, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "history_message_count = 64", tc.Text)

	out := logs.String()
	assert.Contains(t, out, `"message":"mcp server started"`)
	assert.Contains(t, out, `"tools":5`)
	assert.Contains(t, out, `"level":"info","component":"mcp","tool":"set_parameter"`)
	assert.Contains(t, out, `"message":"tool call"`)
	assert.NotContains(t, out, "tool call failed")
}

func TestServer_ToolErrorIsResult(t *testing.T) {
	session, logs := connect(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "select_model",
		Arguments: map[string]any{"provider": "OpenAI", "model": "nope"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)

	out := logs.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"tool":"select_model"`)
	assert.Contains(t, out, `has no available model \"nope\"`)
	assert.Contains(t, out, `"message":"tool call failed"`)
}

func TestServer_ContextCancellation(t *testing.T) {
	p, _ := newPanel(t)
	logs := &logBuffer{}
	s := NewServer(p, "1.0.0", zerolog.New(logs))
	serverTransport, _ := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.serve(ctx, serverTransport)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, logs.String(), `"message":"mcp server stopped"`)
}
