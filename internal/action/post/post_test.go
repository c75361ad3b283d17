package post

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTransport fails every request and counts the attempts.
type countingTransport struct {
	calls int
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls++
	return nil, errors.New("unexpected request")
}

func newTestAction(client *http.Client) (*Action, *bytes.Buffer, *bytes.Buffer) {
	var out, diag bytes.Buffer
	a := New(WithHTTPClient(client), WithOutput(&out), WithDiagnostics(&diag))
	return a, &out, &diag
}

func TestExecute_WrongArityPrintsHelp(t *testing.T) {
	cases := [][]string{
		nil,
		{},
		{"onlyurl"},
		{"a", "b", "c"},
	}

	for _, args := range cases {
		t.Run(strings.Join(args, ","), func(t *testing.T) {
			transport := &countingTransport{}
			a, out, diag := newTestAction(&http.Client{Transport: transport})

			a.Execute(args)

			assert.Zero(t, transport.calls, "no connection may be opened")
			assert.Empty(t, out.String())
			assert.Contains(t, diag.String(), "Usage: post {url} {body}")
		})
	}
}

func TestExecute_SendsPost(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotBody   []byte
	)
	response := strings.Repeat("r", 3000) + "\x00\xff end"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(response))
	}))
	defer server.Close()

	a, out, diag := newTestAction(server.Client())
	a.Execute([]string{server.URL + "/", `{"k":1}`})

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json; charset=UTF-8", gotType)
	assert.Equal(t, []byte(`{"k":1}`), gotBody)

	echo := "Calling '" + server.URL + "/' with body: {\"k\":1}\n"
	assert.Equal(t, echo+response, out.String())
	assert.Empty(t, diag.String())
}

func TestExecute_BodyNotValidated(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	a, _, diag := newTestAction(server.Client())
	a.Execute([]string{server.URL, "not json"})

	assert.Equal(t, "not json", string(gotBody))
	assert.Empty(t, diag.String())
}

func TestExecute_ErrorStatusStillStreamed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer server.Close()

	a, out, _ := newTestAction(server.Client())
	a.Execute([]string{server.URL, "{}"})

	assert.True(t, strings.HasSuffix(out.String(), `{"error":"boom"}`))
}

func TestExecute_MalformedURLIsReported(t *testing.T) {
	transport := &countingTransport{}
	a, out, diag := newTestAction(&http.Client{Transport: transport})

	require.NotPanics(t, func() {
		a.Execute([]string{"://missing-scheme", "{}"})
	})

	assert.Zero(t, transport.calls)
	assert.Contains(t, out.String(), "Calling '://missing-scheme'")
	assert.Contains(t, diag.String(), "action failed")
}

func TestExecute_ConnectionFailureIsReported(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	a, _, diag := newTestAction(http.DefaultClient)
	require.NotPanics(t, func() {
		a.Execute([]string{url, "{}"})
	})
	assert.Contains(t, diag.String(), "action failed")
	assert.Contains(t, diag.String(), "post")
}

func TestHelp(t *testing.T) {
	var diag bytes.Buffer
	New(WithDiagnostics(&diag)).Help()

	help := diag.String()
	assert.Contains(t, help, "Executes a HTTP POST request")
	assert.Contains(t, help, "Usage: post {url} {body}")
	assert.Contains(t, help, "url: full HTTP url")
	assert.Contains(t, help, "body: JSON string to include as body of the request")
}
