package bitfinex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type endpointCase struct {
	name     string
	endpoint Endpoint
	params   *Params
	kind     DispatchKind
	url      string
}

var listenerCases = []endpointCase{
	{"symbols", EndpointSymbols, NewParams(), Public, "/conf/pub:list:pair:exchange"},
	{"inactiveSymbols", EndpointInactiveSymbols, NewParams(), Public, "/conf/pub:list:pair:exchange:inactive"},
	{"futures", EndpointFutures, NewParams(), Public, "/conf/pub:list:pair:futures"},
	{"ledgers", EndpointLedgers, NewParams(), Authenticated, "/auth/r/ledgers/hist"},
	{"ledgers filtered", EndpointLedgers, NewParams("filters", "USD"), Authenticated, "/auth/r/ledgers/USD/hist"},
	{"publicPulseProfile", EndpointPublicPulseProfile, NewParams("nickname", "Bitfinex"), Public, "/pulse/profile/Bitfinex"},
	{"addPulse", EndpointAddPulse, NewParams(), Authenticated, "/auth/w/pulse/add"},
	{"addPulseComment", EndpointAddPulseComment, NewParams("parent", "parent", "content", "content"), Authenticated, "/auth/w/pulse/add"},
	{"fetchPulseComments", EndpointFetchPulseComments, NewParams("parent", "parent"), Authenticated, "/auth/r/pulse/hist"},
	{"deletePulse", EndpointDeletePulse, NewParams(), Authenticated, "/auth/w/pulse/del"},
	{"publicPulseHistory", EndpointPublicPulseHistory, NewParams("limit", 2, "end", 1589559090651), Public, "/pulse/hist?limit=2&end=1589559090651"},
	{"pulseHistory", EndpointPulseHistory, NewParams(), Authenticated, "/auth/r/pulse/hist"},
	{"generateInvoice", EndpointGenerateInvoice, NewParams(), Authenticated, "/auth/w/deposit/invoice"},
	{"marketAveragePrice", EndpointMarketAveragePrice, NewParams("symbol", "fUSD", "amount", 100), PublicPost, "/calc/trade/avg?symbol=fUSD&amount=100"},
	{"keepFunding", EndpointKeepFunding, NewParams("type", "type", "id", "id"), Authenticated, "/auth/w/funding/keep"},
	{"cancelOrderMulti", EndpointCancelOrderMulti, NewParams("id", []int{123}), Authenticated, "/auth/w/order/cancel/multi"},
	{"orderMultiOp", EndpointOrderMultiOp, NewParams("ops", [][]interface{}{{"oc_multi", NewParams("id", []int{1})}}), Authenticated, "/auth/w/order/multi"},
	{"invalidateAuthToken", EndpointInvalidateAuthToken, NewParams("authToken", "token"), Authenticated, "/auth/w/token/del"},
	{"payInvoiceCreate", EndpointPayInvoiceCreate, NewParams(), Authenticated, "/auth/w/ext/pay/invoice/create"},
	{"payInvoiceList", EndpointPayInvoiceList, NewParams(), Authenticated, "/auth/r/ext/pay/invoices"},
	{"payInvoiceComplete", EndpointPayInvoiceComplete, NewParams(), Authenticated, "/auth/w/ext/pay/invoice/complete"},
	{"payDepositsUnlinked", EndpointPayDepositsUnlinked, NewParams(), Authenticated, "/auth/r/ext/pay/deposits/unlinked"},

	{"status", EndpointStatus, nil, Public, "/platform/status"},
	{"ticker", EndpointTicker, nil, Public, "/ticker/tBTCUSD"},
	{"ticker symbol", EndpointTicker, NewParams("symbol", "fUSD"), Public, "/ticker/fUSD"},
	{"tickers", EndpointTickers, NewParams("symbols", []string{"tBTCUSD", "fUSD"}), Public, "/tickers?symbols=tBTCUSD%2CfUSD"},
	{"orderBook", EndpointOrderBook, NewParams("symbol", "tETHUSD", "len", 25), Public, "/book/tETHUSD/P0?len=25"},
	{"orderBook raw", EndpointOrderBook, NewParams("prec", "R0"), Public, "/book/tBTCUSD/R0"},
	{"candles", EndpointCandles, NewParams("timeframe", "1h", "symbol", "tBTCUSD", "limit", 10), Public, "/candles/trade:1h:tBTCUSD/hist?limit=10"},
	{"candles last", EndpointCandles, NewParams("section", "last"), Public, "/candles/trade:1m:tBTCUSD/last"},
	{"currencies", EndpointCurrencies, nil, Public, "/conf/pub:list:currency"},
	{"exchangeRate", EndpointExchangeRate, NewParams("ccy1", "BTC", "ccy2", "USD"), PublicPost, "/calc/fx"},
	{"wallets", EndpointWallets, nil, Authenticated, "/auth/r/wallets"},
	{"activeOrders", EndpointActiveOrders, NewParams("id", []int{1, 2}), Authenticated, "/auth/r/orders"},
	{"positions", EndpointPositions, nil, Authenticated, "/auth/r/positions"},
	{"userInfo", EndpointUserInfo, nil, Authenticated, "/auth/r/info/user"},
	{"submitOrder", EndpointSubmitOrder, NewParams("type", "EXCHANGE LIMIT", "symbol", "tBTCUSD", "amount", "0.1", "price", "9000"), Authenticated, "/auth/w/order/submit"},
	{"cancelOrder", EndpointCancelOrder, NewParams("id", 1), Authenticated, "/auth/w/order/cancel"},
	{"generateToken", EndpointGenerateToken, NewParams("ttl", 3600, "scope", "api"), Authenticated, "/auth/w/token"},
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()
	for _, tc := range listenerCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := BuildRequest(tc.endpoint, tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.url, d.URL, "URL should match")
			assert.Equal(t, tc.kind, d.Kind, "dispatch kind should match")
			assert.Equal(t, tc.kind.Method(), d.Method)
			if tc.kind == Public {
				assert.Nil(t, d.Body, "public GET requests carry no body")
			} else {
				assert.NotNil(t, d.Body, "POST requests always carry a body")
			}
		})
	}
}

func TestBuildRequestTrades(t *testing.T) {
	t.Parallel()
	d, err := BuildRequest(EndpointTrades, NewParams("symbol", "tBTCUSD", "start", 1, "end", 2, "limit", 3, "sort", 4))
	require.NoError(t, err)
	assert.Equal(t, "/trades/tBTCUSD/hist?start=1&end=2&limit=3&sort=4", d.URL, "symbol should go to the path and never the query")

	d, err = BuildRequest(EndpointTrades, nil)
	require.NoError(t, err)
	assert.Equal(t, "/trades/tBTCUSD/hist", d.URL, "symbol should default to tBTCUSD")

	d, err = BuildRequest(EndpointTrades, NewParams("symbol", "t/BAD", "limit", nil))
	require.NoError(t, err)
	assert.Equal(t, "/trades/t%2FBAD/hist", d.URL, "path segments should be escaped")
}

func TestBuildRequestBodies(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name     string
		endpoint Endpoint
		params   *Params
		body     string
	}{
		{"fetchPulseComments", EndpointFetchPulseComments, NewParams("parent", "p", "limit", 5, "other", 1), `{"parent":"p","limit":5,"isPublic":0}`},
		{"fetchPulseComments override", EndpointFetchPulseComments, NewParams("parent", "p", "isPublic", 1), `{"parent":"p","isPublic":0}`},
		{"pulseHistory", EndpointPulseHistory, NewParams("isPublic", 1, "limit", 3), `{"limit":3,"isPublic":1}`},
		{"invalidateAuthToken", EndpointInvalidateAuthToken, NewParams("authToken", "token"), `{"token":"token"}`},
		{"keepFunding", EndpointKeepFunding, NewParams("type", "credit", "id", 1, "changes", NewParams("1", 1)), `{"type":"credit","id":1,"changes":{"1":1}}`},
		{"cancelOrderMulti", EndpointCancelOrderMulti, NewParams("id", []int{123}, "all", nil), `{"id":[123]}`},
		{"orderMultiOp", EndpointOrderMultiOp, NewParams("ops", [][]interface{}{{"oc_multi", NewParams("id", []int{1})}}), `{"ops":[["oc_multi",{"id":[1]}]]}`},
		{"generateInvoice", EndpointGenerateInvoice, NewParams("wallet", "exchange", "currency", "LNX", "amount", "0.001"), `{"currency":"LNX","wallet":"exchange","amount":"0.001"}`},
		{"marketAveragePrice", EndpointMarketAveragePrice, NewParams("symbol", "fUSD", "amount", 100), `{}`},
		{"payInvoiceCreate", EndpointPayInvoiceCreate, NewParams("amount", 1, "currency", "USD", "memo", nil), `{"amount":1,"currency":"USD"}`},
		{"ledgers", EndpointLedgers, NewParams("filters", NewParams("ccy", "BTC", "category", 28), "limit", 2), `{"limit":2,"category":28}`},
		{"wallets", EndpointWallets, NewParams("ignored", 1), `{}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := BuildRequest(tc.endpoint, tc.params)
			require.NoError(t, err)
			b, err := d.EncodeBody()
			require.NoError(t, err)
			assert.Equal(t, tc.body, string(b))
		})
	}
}

func TestBuildRequestLedgersFilters(t *testing.T) {
	t.Parallel()
	d, err := BuildRequest(EndpointLedgers, NewParams("filters", map[string]interface{}{"ccy": "ETH"}))
	require.NoError(t, err)
	assert.Equal(t, "/auth/r/ledgers/ETH/hist", d.URL)

	d, err = BuildRequest(EndpointLedgers, NewParams("filters", NewParams("category", 28)))
	require.NoError(t, err)
	assert.Equal(t, "/auth/r/ledgers/hist", d.URL, "a category alone should not pick a currency path")

	_, err = BuildRequest(EndpointLedgers, NewParams("filters", 12))
	require.ErrorIs(t, err, errUnsupportedValue)
}

func TestBuildRequestErrors(t *testing.T) {
	t.Parallel()
	_, err := BuildRequest("nope", nil)
	require.ErrorIs(t, err, ErrUnknownEndpoint)

	_, err = BuildRequest(EndpointAddPulseComment, NewParams("parent", "p"))
	require.ErrorIs(t, err, ErrMissingParameter)
	assert.ErrorContains(t, err, "content")

	_, err = BuildRequest(EndpointFetchPulseComments, NewParams("parent", ""))
	require.ErrorIs(t, err, ErrMissingParameter, "an empty parent should count as missing")

	_, err = BuildRequest(EndpointPublicPulseProfile, nil)
	require.ErrorIs(t, err, ErrMissingParameter, "a path segment without a default must be supplied")

	_, err = BuildRequest(EndpointPublicPulseHistory, NewParams("limit", func() {}))
	require.ErrorIs(t, err, errUnsupportedValue)
}

func TestBuildRequestIdempotent(t *testing.T) {
	t.Parallel()
	for _, tc := range listenerCases {
		a, err := BuildRequest(tc.endpoint, tc.params)
		require.NoError(t, err)
		b, err := BuildRequest(tc.endpoint, tc.params)
		require.NoError(t, err)
		assert.Equalf(t, a, b, "%s should build the same descriptor twice", tc.name)
	}
}

func TestBuildRequestDoesNotMutateParams(t *testing.T) {
	t.Parallel()
	p := NewParams("symbol", "tETHUSD", "start", 1)
	_, err := BuildRequest(EndpointTrades, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"symbol", "start"}, p.Keys())

	p = NewParams("type", "LIMIT", "symbol", "tBTCUSD", "amount", "1")
	d, err := BuildRequest(EndpointSubmitOrder, p)
	require.NoError(t, err)
	d.Body.Set("meta", 1)
	assert.True(t, p.IsNullish("meta"), "pass-through bodies should be copies")
}

func TestEndpoints(t *testing.T) {
	t.Parallel()
	all := Endpoints()
	require.Len(t, all, len(endpoints))
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i], "Endpoints should be sorted")
	}
	assert.Equal(t, Public, EndpointTrades.Kind())
	assert.Equal(t, Authenticated, EndpointLedgers.Kind())
	assert.Equal(t, PublicPost, EndpointMarketAveragePrice.Kind())
	assert.Zero(t, Endpoint("nope").Kind())
}

func TestDispatchKind(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "auth", Authenticated.String())
	assert.Equal(t, "publicPost", PublicPost.String())
	assert.Equal(t, "unknown", DispatchKind(0).String())
	assert.Equal(t, "GET", Public.Method())
	assert.Equal(t, "POST", Authenticated.Method())
	assert.Equal(t, "POST", PublicPost.Method())
}
