package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	goerrors "github.com/go-errors/errors"
)

var (
	// ErrNetwork covers any failure to obtain the document bytes.
	ErrNetwork = errors.New("content unavailable")
	// ErrParse means the document was obtained but is not a JSON object.
	ErrParse = errors.New("content malformed")
	// ErrUnsupported means the language is not configured.
	ErrUnsupported = errors.New("language not supported")
)

// LoadError describes a failed dictionary load. errors.Is matches its Kind.
type LoadError struct {
	Lang   string
	Source string
	Kind   error
	Err    *goerrors.Error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s from %s: %v: %v", e.Lang, e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == e.Kind }

func newLoadError(lang, source string, kind error, cause any) *LoadError {
	return &LoadError{Lang: lang, Source: source, Kind: kind, Err: goerrors.Wrap(cause, 1)}
}

// Loader fetches the dictionary for one language.
type Loader interface {
	Load(ctx context.Context, lang string) (*Dictionary, error)
}

// NewLoader picks an HTTP loader for http(s) base paths and a directory loader
// otherwise.
func NewLoader(basePath string) Loader {
	if strings.HasPrefix(basePath, "http://") || strings.HasPrefix(basePath, "https://") {
		return &HTTPLoader{BaseURL: strings.TrimRight(basePath, "/"), Client: &http.Client{Timeout: 10 * time.Second}}
	}
	return DirLoader(basePath)
}

// DirLoader reads {dir}/{lang}.json.
type DirLoader string

func (d DirLoader) Load(ctx context.Context, lang string) (*Dictionary, error) {
	path := filepath.Join(string(d), lang+".json")
	if err := ctx.Err(); err != nil {
		return nil, newLoadError(lang, path, ErrNetwork, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newLoadError(lang, path, ErrNetwork, err)
	}
	dict, err := Parse(raw)
	if err != nil {
		return nil, newLoadError(lang, path, ErrParse, err)
	}
	return dict, nil
}

// HTTPLoader fetches {BaseURL}/{lang}.json.
type HTTPLoader struct {
	BaseURL string
	Client  *http.Client
}

func (h *HTTPLoader) Load(ctx context.Context, lang string) (*Dictionary, error) {
	url := h.BaseURL + "/" + lang + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newLoadError(lang, url, ErrNetwork, err)
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, newLoadError(lang, url, ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newLoadError(lang, url, ErrNetwork, fmt.Errorf("HTTP error! status: %d", resp.StatusCode))
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newLoadError(lang, url, ErrNetwork, err)
	}
	dict, err := Parse(raw)
	if err != nil {
		return nil, newLoadError(lang, url, ErrParse, err)
	}
	return dict, nil
}
