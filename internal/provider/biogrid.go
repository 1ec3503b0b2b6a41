package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/agenthands/ppinet/internal/core/model"
)

const (
	BioGRIDSymbolA = "OFFICIAL_SYMBOL_A"
	BioGRIDSymbolB = "OFFICIAL_SYMBOL_B"
)

// BioGRID queries the BioGRID REST interactions endpoint. The response is an
// object keyed by interaction id; records are read in document order.
type BioGRID struct {
	BaseURL   string
	AccessKey string
	Organism  int
	Client    *http.Client
}

func NewBioGRID(baseURL, accessKey string, organism int, client *http.Client) *BioGRID {
	if client == nil {
		client = http.DefaultClient
	}
	return &BioGRID{
		BaseURL:   baseURL,
		AccessKey: accessKey,
		Organism:  organism,
		Client:    client,
	}
}

func (b *BioGRID) ID() string   { return IDBioGRID }
func (b *BioGRID) Name() string { return "BioGRID" }

func (b *BioGRID) Fetch(ctx context.Context, symbol string) (model.InteractionTable, error) {
	table := model.NewInteractionTable(BioGRIDSymbolA, BioGRIDSymbolB)
	if b.AccessKey == "" {
		return table, &FetchError{Provider: b.Name(), Kind: KindConfig, Err: ErrMissingAccessKey}
	}

	params := url.Values{}
	params.Set("accessKey", b.AccessKey)
	params.Set("format", "json")
	params.Set("searchNames", "true")
	params.Set("geneList", symbol)
	params.Set("organism", strconv.Itoa(b.Organism))
	params.Set("includeInteractors", "true")

	doc, err := getJSON(ctx, b.Client, b.Name(), b.BaseURL, params)
	if err != nil {
		return table, err
	}
	if isEmpty(doc) {
		return table, &FetchError{Provider: b.Name(), Kind: KindEmpty, Err: fmt.Errorf("no interactions for %q", symbol)}
	}
	if !doc.IsObject() {
		return table, &FetchError{Provider: b.Name(), Kind: KindShape, Err: errors.New("expected a JSON object of interactions")}
	}

	var shapeErr error
	doc.ForEach(func(key, rec gjson.Result) bool {
		a, c, ok := symbols(rec, BioGRIDSymbolA, BioGRIDSymbolB)
		if !ok {
			shapeErr = fmt.Errorf("interaction %s lacks %s/%s", key.String(), BioGRIDSymbolA, BioGRIDSymbolB)
			return false
		}
		table.Append(strings.ToUpper(a), strings.ToUpper(c))
		return true
	})
	if shapeErr != nil {
		return model.NewInteractionTable(BioGRIDSymbolA, BioGRIDSymbolB), &FetchError{Provider: b.Name(), Kind: KindShape, Err: shapeErr}
	}
	return table, nil
}
