// Package post implements the action that sends a single JSON POST request
// and streams the response body to standard output.
package post

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/bundlekit/bundle-utils/internal/action"
	"github.com/bundlekit/bundle-utils/internal/logging"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// Name is the name the action is registered under.
const Name = "post"

// ContentType is sent with every request. The body is not checked to be JSON.
const ContentType = "application/json; charset=UTF-8"

const chunkSize = 1024

// Action sends one POST request per Execute.
type Action struct {
	client *http.Client
	out    io.Writer
	diag   io.Writer
	log    *zerolog.Logger
}

var _ action.Action = (*Action)(nil)

// Option configures an Action.
type Option func(*Action)

// WithHTTPClient sets the HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(a *Action) {
		a.client = c
	}
}

// WithOutput sets where the echo line and response body are written.
func WithOutput(w io.Writer) Option {
	return func(a *Action) {
		a.out = w
	}
}

// WithDiagnostics sets where usage text and failures are written.
func WithDiagnostics(w io.Writer) Option {
	return func(a *Action) {
		a.diag = w
	}
}

// WithLogger sets the logger failures are reported through. Defaults to an
// info-level logger on the diagnostic output.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Action) {
		a.log = &l
	}
}

// New creates a post action.
func New(opts ...Option) *Action {
	a := &Action{
		client: http.DefaultClient,
		out:    os.Stdout,
		diag:   os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		l := logging.New(a.diag, "info")
		a.log = &l
	}
	return a
}

// Execute expects exactly [url, body]. Any other arity prints usage.
func (a *Action) Execute(args []string) {
	if len(args) != 2 {
		a.Help()
		return
	}
	action.Guard(*a.log, Name, func() error {
		return a.send(args[0], args[1])
	})
}

func (a *Action) send(url, body string) error {
	fmt.Fprintf(a.out, "Calling '%s' with body: %s\n", url, body)

	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", ContentType)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", url, err)
	}
	defer resp.Body.Close()

	a.log.Debug().Str("action", Name).Int("status", resp.StatusCode).Msg("response received")

	buf := make([]byte, chunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := a.out.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("writing response: %w", writeErr)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("reading response: %w", readErr)
		}
	}
}

// Help prints usage for the post action.
func (a *Action) Help() {
	color.New(color.Bold).Fprintln(a.diag, "Executes a HTTP POST request")
	fmt.Fprintf(a.diag, "Usage: %s {url} {body}\n", Name)
	fmt.Fprintln(a.diag, "\t url: full HTTP url")
	fmt.Fprintln(a.diag, "\t body: JSON string to include as body of the request")
}
