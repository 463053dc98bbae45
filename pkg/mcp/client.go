package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Client talks to one remote MCP endpoint over the streamable HTTP transport.
// The session is opened on first use and replaced after a failed exchange.
type Client struct {
	name       string
	url        string
	timeout    time.Duration
	clientInfo *mcpsdk.Implementation
	httpClient *http.Client

	sdk *mcpsdk.Client

	mu      sync.Mutex
	session *mcpsdk.ClientSession
	closed  bool
}

var _ IMCP = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every exchange made by the client, the handshake included.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithClientInfo overrides the client name and version sent on initialize.
func WithClientInfo(name, version string) Option {
	return func(c *Client) {
		c.clientInfo = &mcpsdk.Implementation{Name: name, Version: version}
	}
}

// WithHTTPClient swaps the underlying transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the endpoint at url. name identifies the endpoint
// in logs and errors.
func New(name, url string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyURL)
	}

	c := &Client{
		name:       name,
		url:        url,
		clientInfo: &mcpsdk.Implementation{Name: DefaultClientName, Version: DefaultClientVersion},
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sdk = mcpsdk.NewClient(c.clientInfo, nil)
	return c, nil
}

// Name returns the endpoint name.
func (c *Client) Name() string {
	return c.name
}

// URL returns the endpoint url.
func (c *Client) URL() string {
	return c.url
}

// CallTool invokes a tool and returns the tools/call result as JSON.
// A result flagged isError is reported as *ToolError.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (json.RawMessage, error) {
	if args == nil {
		args = map[string]any{}
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	session, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		c.discard(ctx, session)
		return nil, fmt.Errorf("%s: tools/call %s: %w", c.name, name, err)
	}
	if result.IsError {
		return nil, &ToolError{Tool: name, Message: joinText(result.Content)}
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("%s: encode %s result: %w", c.name, name, err)
	}
	return raw, nil
}

// Ping checks that the endpoint answers.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	session, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if err := session.Ping(ctx, &mcpsdk.PingParams{}); err != nil {
		c.discard(ctx, session)
		return fmt.Errorf("%s: ping: %w", c.name, err)
	}
	return nil
}

// Close ends the current session. Later calls fail with ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.closed = true
	c.mu.Unlock()

	if session == nil {
		return nil
	}
	return session.Close()
}

// connect returns the live session, running initialize and
// notifications/initialized when there is none.
func (c *Client) connect(ctx context.Context) (*mcpsdk.ClientSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("%s: %w", c.name, ErrClosed)
	}
	if c.session != nil {
		return c.session, nil
	}

	transport := &mcpsdk.StreamableClientTransport{
		Endpoint:   c.url,
		HTTPClient: c.httpClient,
	}
	session, err := c.sdk.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: initialize: %w", c.name, err)
	}

	c.session = session
	return session, nil
}

// discard drops a session after a failed exchange so the next call starts a
// new one, e.g. when the server answered 404 for an expired session. A call
// that failed only because ctx ended keeps the session.
func (c *Client) discard(ctx context.Context, stale *mcpsdk.ClientSession) {
	if ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	if c.session != stale {
		c.mu.Unlock()
		return
	}
	c.session = nil
	c.mu.Unlock()

	go func() { _ = stale.Close() }()
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func joinText(content []mcpsdk.Content) string {
	parts := make([]string, 0, len(content))
	for _, block := range content {
		if text, ok := block.(*mcpsdk.TextContent); ok && text.Text != "" {
			parts = append(parts, text.Text)
		}
	}
	if len(parts) == 0 {
		return "unknown error"
	}
	return strings.Join(parts, "; ")
}
