package provider

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ppinet/internal/config"
	"github.com/agenthands/ppinet/internal/core/model"
	"github.com/agenthands/ppinet/internal/observability"
)

func newRetriever(t *testing.T, status int, body string) (*Retriever, *observability.Collector) {
	t.Helper()
	srv := fakeServer(t, status, body, nil)
	metrics := observability.NewCollector("test")
	r := NewRetriever(nil, metrics,
		NewBioGRID(srv.URL, "k", 9606, srv.Client()),
		NewStringDB(srv.URL, 9606, "", srv.Client()),
	)
	return r, metrics
}

func TestRetriever_Success(t *testing.T) {
	r, metrics := newRetriever(t, http.StatusOK, `{"1": {"OFFICIAL_SYMBOL_A": "tp53", "OFFICIAL_SYMBOL_B": "mdm2"}}`)

	res := r.Fetch(context.Background(), "biogrid", "TP53")

	assert.Nil(t, res.Notice)
	assert.NoError(t, res.Err)
	assert.Equal(t, []model.InteractionRecord{{SymbolA: "TP53", SymbolB: "MDM2"}}, res.Table.Records)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Fetches.WithLabelValues("biogrid", "ok")))
}

func TestRetriever_TransportFailureBothProviders(t *testing.T) {
	r, _ := newRetriever(t, http.StatusServiceUnavailable, ``)

	for _, id := range []string{IDBioGRID, IDString} {
		res := r.Fetch(context.Background(), id, "TP53")

		assert.True(t, res.Table.Empty(), id)
		require.NotNil(t, res.Notice, id)
		assert.Equal(t, model.LevelError, res.Notice.Level)
		assert.Contains(t, res.Notice.Message, "Error retrieving data from")
	}
}

func TestRetriever_ShapeAndEmptyAreWarnings(t *testing.T) {
	r, _ := newRetriever(t, http.StatusOK, `[{"foo": "bar"}]`)
	res := r.Fetch(context.Background(), "string", "TP53")
	require.NotNil(t, res.Notice)
	assert.Equal(t, model.LevelWarning, res.Notice.Level)
	assert.Equal(t, "The data structure from STRING does not contain expected columns.", res.Notice.Message)

	r, _ = newRetriever(t, http.StatusOK, `[]`)
	res = r.Fetch(context.Background(), "string", "FOO1")
	require.NotNil(t, res.Notice)
	assert.Equal(t, model.LevelWarning, res.Notice.Level)
	assert.Equal(t, "No data found for the protein ID 'FOO1' in STRING.", res.Notice.Message)
}

func TestRetriever_UnknownProvider(t *testing.T) {
	r, _ := newRetriever(t, http.StatusOK, `[]`)

	res := r.Fetch(context.Background(), "intact", "TP53")

	assert.True(t, res.Table.Empty())
	require.NotNil(t, res.Notice)
	assert.Equal(t, model.LevelError, res.Notice.Level)
	kind, _ := KindOf(res.Err)
	assert.Equal(t, KindUnknownProvider, kind)
}

func TestRetriever_CaseInsensitiveID(t *testing.T) {
	r, _ := newRetriever(t, http.StatusOK, `[{"preferredName_A": "A", "preferredName_B": "B"}]`)

	res := r.Fetch(context.Background(), "STRING", "A")

	assert.Equal(t, 1, res.Table.Len())
	assert.Equal(t, "STRING", r.ProviderName("string"))
}

func TestRetriever_MissingKeyNotice(t *testing.T) {
	r := NewRetriever(nil, nil, NewBioGRID("http://127.0.0.1:0", "", 9606, nil))

	res := r.Fetch(context.Background(), "biogrid", "TP53")

	require.NotNil(t, res.Notice)
	assert.Equal(t, model.LevelError, res.Notice.Level)
	assert.Contains(t, res.Notice.Message, "PPI_BIOGRID_ACCESS_KEY")
}

func TestNewProviders(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	providers, err := NewProviders(cfg, NewHTTPClient(cfg.HTTP))
	require.NoError(t, err)

	r := NewRetriever(nil, nil, providers...)
	assert.Equal(t, []Option{{ID: "biogrid", Name: "BioGRID"}, {ID: "string", Name: "STRING"}}, r.Options())

	_, err = NewProvider("intact", cfg, nil)
	assert.Error(t, err)
}

func TestRetriever_NoticeHidesAccessKey(t *testing.T) {
	srv := fakeServer(t, http.StatusOK, `{}`, nil)
	base := srv.URL
	srv.Close()
	r := NewRetriever(nil, nil, NewBioGRID(base, "SUPERSECRETKEY", 9606, nil))

	res := r.Fetch(context.Background(), "biogrid", "TP53")

	require.NotNil(t, res.Notice)
	assert.Equal(t, model.LevelError, res.Notice.Level)
	assert.Contains(t, res.Notice.Message, "Error retrieving data from BioGRID")
	assert.NotContains(t, res.Notice.Message, "SUPERSECRETKEY")
	assert.NotContains(t, res.Err.Error(), "SUPERSECRETKEY")
}
