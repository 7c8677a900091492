package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgxmldoc "github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// Loader implements pkgxmldoc.Loader by delegating to file, fs.FS, or
// HTTP strategies. Construction helpers live in the top-level apidoc
// package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgxmldoc.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgxmldoc.LoaderOptions) pkgxmldoc.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a documentation file from the provided source and parses
// it into a Fragment.
func (l *Loader) Load(ctx context.Context, src pkgxmldoc.Source) (pkgxmldoc.Fragment, error) {
	if src == nil {
		return pkgxmldoc.Fragment{}, errors.New("xmldoc loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgxmldoc.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgxmldoc.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgxmldoc.SourceKindURL:
		if !l.allowHTTP {
			return pkgxmldoc.Fragment{}, errors.New("xmldoc loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	case pkgxmldoc.SourceKindInline:
		err = errors.New("xmldoc loader: inline sources carry their payload, call xmldoc.Parse directly")
	default:
		err = errors.New("xmldoc loader: unsupported source kind")
	}
	if err != nil {
		return pkgxmldoc.Fragment{}, err
	}

	return pkgxmldoc.Parse(src, data)
}
