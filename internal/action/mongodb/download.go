package mongodb

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/bundlekit/bundle-utils/internal/action"
	"github.com/bundlekit/bundle-utils/internal/branding"
	"github.com/bundlekit/bundle-utils/internal/logging"
	"github.com/bundlekit/bundle-utils/internal/platform"
	"github.com/bundlekit/bundle-utils/internal/transfer"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// Name is the name the action is registered under.
const Name = "download-mongodb"

// UnsupportedMessage is printed for hosts with no published build.
const UnsupportedMessage = "Current OS not supported, please check documentation for installing mongodb manually"

// Action downloads the MongoDB archive for the host OS.
type Action struct {
	client   *http.Client
	diag     io.Writer
	log      *zerolog.Logger
	detect   func() platform.OSType
	dir      string
	template string
	version  string
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

// WithDiagnostics sets where progress, usage text and failures are written.
func WithDiagnostics(w io.Writer) Option {
	return func(a *Action) {
		a.diag = w
	}
}

// WithLogger sets the logger failures are reported through.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Action) {
		a.log = &l
	}
}

// WithOS skips host detection and uses os instead.
func WithOS(os platform.OSType) Option {
	return func(a *Action) {
		a.detect = func() platform.OSType { return os }
	}
}

// WithDir sets the directory the archive is written to.
func WithDir(dir string) Option {
	return func(a *Action) {
		a.dir = dir
	}
}

// WithURLTemplate replaces DefaultURLTemplate.
func WithURLTemplate(template string) Option {
	return func(a *Action) {
		if template != "" {
			a.template = template
		}
	}
}

// WithVersion replaces DefaultVersion.
func WithVersion(version string) Option {
	return func(a *Action) {
		if version != "" {
			a.version = version
		}
	}
}

// New creates a download action.
func New(opts ...Option) *Action {
	a := &Action{
		client:   http.DefaultClient,
		diag:     os.Stderr,
		detect:   platform.Detect,
		dir:      ".",
		template: DefaultURLTemplate,
		version:  DefaultVersion,
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

// Execute ignores its arguments apart from a lone help flag.
func (a *Action) Execute(args []string) {
	if len(args) == 1 && isHelpArg(args[0]) {
		a.Help()
		return
	}
	action.Guard(*a.log, Name, a.download)
}

func isHelpArg(arg string) bool {
	switch arg {
	case "help", "-h", "--help":
		return true
	}
	return false
}

// resolve turns the template into a concrete URL and output path. ok is false
// when the host OS has no build, in which case the caller must not connect.
func (a *Action) resolve() (target *url.URL, path string, ok bool, err error) {
	osType := a.detect()

	version, err := ParseVersion(a.version)
	if err != nil {
		return nil, "", false, err
	}

	rel, ok := ResolveRelease(osType, version)
	if !ok {
		return nil, "", false, nil
	}

	raw := rel.Apply(a.template)
	if Unresolved(raw) {
		return nil, "", false, fmt.Errorf("unresolved placeholder in download URL %q", raw)
	}

	target, err = url.Parse(raw)
	if err != nil {
		return nil, "", false, fmt.Errorf("malformed download URL: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, "", false, fmt.Errorf("malformed download URL %q: missing scheme or host", raw)
	}

	a.log.Debug().Str("action", Name).Stringer("os", osType).Str("url", raw).Msg("resolved download")
	return target, filepath.Join(a.dir, OutputName(osType)), true, nil
}

func (a *Action) download() error {
	target, path, ok, err := a.resolve()
	if err != nil {
		return err
	}
	if !ok {
		color.New(color.FgYellow).Fprintln(a.diag, UnsupportedMessage)
		return nil
	}

	req, err := http.NewRequest(http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", branding.UserAgent())

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating download file: %w", err)
	}
	defer f.Close()

	n, err := transfer.Copy(f, resp.Body, transfer.Reporter(a.diag))
	if n > 0 {
		fmt.Fprintln(a.diag)
	}
	if err != nil {
		return fmt.Errorf("downloading to %s: %w", path, err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	fmt.Fprintf(a.diag, "Saved %s (%s)\n", path, humanize.Bytes(uint64(n)))
	return nil
}

// Help prints usage for the download action.
func (a *Action) Help() {
	color.New(color.Bold).Fprintln(a.diag, "Downloads the MongoDB installer for the current operating system")
	fmt.Fprintf(a.diag, "Usage: %s\n", Name)
	fmt.Fprintln(a.diag, "\t writes mongodb.msi (Windows) or mongodb.tgz (macOS, Linux) to the current directory")
}
