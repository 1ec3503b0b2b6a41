package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/agenthands/ppinet/internal/core/model"
)

const (
	StringSymbolA = "preferredName_A"
	StringSymbolB = "preferredName_B"
)

// StringDB queries the STRING network endpoint. The response is an array of
// flat records; names are used as returned.
type StringDB struct {
	BaseURL        string
	Species        int
	CallerIdentity string
	Client         *http.Client
}

func NewStringDB(baseURL string, species int, callerIdentity string, client *http.Client) *StringDB {
	if client == nil {
		client = http.DefaultClient
	}
	return &StringDB{
		BaseURL:        baseURL,
		Species:        species,
		CallerIdentity: callerIdentity,
		Client:         client,
	}
}

func (s *StringDB) ID() string   { return IDString }
func (s *StringDB) Name() string { return "STRING" }

func (s *StringDB) Fetch(ctx context.Context, symbol string) (model.InteractionTable, error) {
	table := model.NewInteractionTable(StringSymbolA, StringSymbolB)

	params := url.Values{}
	params.Set("identifiers", symbol)
	params.Set("species", strconv.Itoa(s.Species))
	if s.CallerIdentity != "" {
		params.Set("caller_identity", s.CallerIdentity)
	}

	doc, err := getJSON(ctx, s.Client, s.Name(), s.BaseURL, params)
	if err != nil {
		return table, err
	}
	if isEmpty(doc) {
		return table, &FetchError{Provider: s.Name(), Kind: KindEmpty, Err: fmt.Errorf("no interactions for %q", symbol)}
	}
	if !doc.IsArray() {
		return table, &FetchError{Provider: s.Name(), Kind: KindShape, Err: errors.New("expected a JSON array of interactions")}
	}

	for i, rec := range doc.Array() {
		a, b, ok := symbols(rec, StringSymbolA, StringSymbolB)
		if !ok {
			return model.NewInteractionTable(StringSymbolA, StringSymbolB), &FetchError{
				Provider: s.Name(),
				Kind:     KindShape,
				Err:      fmt.Errorf("record %d lacks %s/%s", i, StringSymbolA, StringSymbolB),
			}
		}
		table.Append(a, b)
	}
	return table, nil
}
