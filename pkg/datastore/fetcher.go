package datastore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var ErrUnexpectedStatus = errors.New("unexpected response status")

// Fetcher returns the raw bytes of a dataset document by file name.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// NewFetcher picks an HTTP fetcher for http(s) sources and a filesystem
// fetcher for everything else.
func NewFetcher(source string) Fetcher {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewHTTPFetcher(source, http.DefaultClient)
	}
	return NewFSFetcher(afero.NewOsFs(), source)
}

type FSFetcher struct {
	fs   afero.Fs
	root string
}

func NewFSFetcher(fs afero.Fs, root string) *FSFetcher {
	return &FSFetcher{fs: fs, root: root}
}

func (f *FSFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return afero.ReadFile(f.fs, filepath.Join(f.root, name))
}

type HTTPFetcher struct {
	client  *http.Client
	baseURL string
}

func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := f.baseURL + "/" + path.Clean(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %w: %d", url, ErrUnexpectedStatus, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
