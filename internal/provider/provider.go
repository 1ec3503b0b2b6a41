// Package provider fetches protein-protein interactions from public
// databases and normalises them into a two-column InteractionTable.
package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/agenthands/ppinet/internal/core/model"
)

const (
	IDBioGRID = "biogrid"
	IDString  = "string"
)

// Provider is one interaction database.
type Provider interface {
	ID() string
	Name() string
	Fetch(ctx context.Context, symbol string) (model.InteractionTable, error)
}

type Kind string

const (
	KindTransport       Kind = "transport"
	KindShape           Kind = "shape"
	KindEmpty           Kind = "empty"
	KindConfig          Kind = "config"
	KindUnknownProvider Kind = "unknown_provider"
)

var ErrMissingAccessKey = errors.New("access key is not configured")

// FetchError classifies why a provider produced no table.
type FetchError struct {
	Provider string
	Kind     Kind
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s error: %v", e.Provider, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a *FetchError anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

const userAgent = "ppinet/1.0"

// getJSON issues a GET and returns the parsed body. Network errors, non-2xx
// statuses and bodies that are not JSON are transport errors.
func getJSON(ctx context.Context, client *http.Client, provider, base string, params url.Values) (gjson.Result, error) {
	transport := func(err error) error {
		return &FetchError{Provider: provider, Kind: KindTransport, Err: err}
	}

	u, err := url.Parse(base)
	if err != nil {
		return gjson.Result{}, transport(fmt.Errorf("invalid base url: %w", err))
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return gjson.Result{}, transport(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return gjson.Result{}, transport(redact(err, u))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, transport(fmt.Errorf("failed to read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, transport(fmt.Errorf("unexpected status %s", resp.Status))
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, transport(errors.New("response is not valid JSON"))
	}
	return gjson.ParseBytes(body), nil
}

// redact drops the query string from a *url.Error so the access key never
// reaches notices or logs.
func redact(err error, u *url.URL) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	clean := *u
	clean.RawQuery = ""
	clean.User = nil
	return &url.Error{Op: urlErr.Op, URL: clean.String(), Err: urlErr.Err}
}

// isEmpty covers null, [], {} and a blank body.
func isEmpty(doc gjson.Result) bool {
	switch {
	case !doc.Exists(), doc.Type == gjson.Null:
		return true
	case doc.IsArray():
		return len(doc.Array()) == 0
	case doc.IsObject():
		return len(doc.Map()) == 0
	}
	return false
}

// symbols reads two string fields from a record.
func symbols(rec gjson.Result, fieldA, fieldB string) (string, string, bool) {
	a, b := rec.Get(fieldA), rec.Get(fieldB)
	if a.Type != gjson.String || b.Type != gjson.String {
		return "", "", false
	}
	return a.Str, b.Str, true
}
