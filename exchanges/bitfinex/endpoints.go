package bitfinex

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/thrasher-corp/bfxrest/exchanges/request"
)

// DispatchKind selects which request primitive an endpoint goes through
type DispatchKind uint8

// Dispatch kinds
const (
	Public DispatchKind = iota + 1
	Authenticated
	PublicPost
)

// String implements fmt.Stringer
func (k DispatchKind) String() string {
	switch k {
	case Public:
		return "public"
	case Authenticated:
		return "auth"
	case PublicPost:
		return "publicPost"
	default:
		return "unknown"
	}
}

// Method returns the HTTP method used on the wire
func (k DispatchKind) Method() string {
	if k == Public {
		return http.MethodGet
	}
	return http.MethodPost
}

// Endpoint names a REST operation
type Endpoint string

// Endpoints supported by RESTv2
const (
	EndpointTrades              Endpoint = "trades"
	EndpointSymbols             Endpoint = "symbols"
	EndpointInactiveSymbols     Endpoint = "inactiveSymbols"
	EndpointFutures             Endpoint = "futures"
	EndpointLedgers             Endpoint = "ledgers"
	EndpointPublicPulseProfile  Endpoint = "publicPulseProfile"
	EndpointAddPulse            Endpoint = "addPulse"
	EndpointAddPulseComment     Endpoint = "addPulseComment"
	EndpointFetchPulseComments  Endpoint = "fetchPulseComments"
	EndpointDeletePulse         Endpoint = "deletePulse"
	EndpointPublicPulseHistory  Endpoint = "publicPulseHistory"
	EndpointPulseHistory        Endpoint = "pulseHistory"
	EndpointGenerateInvoice     Endpoint = "generateInvoice"
	EndpointMarketAveragePrice  Endpoint = "marketAveragePrice"
	EndpointKeepFunding         Endpoint = "keepFunding"
	EndpointCancelOrderMulti    Endpoint = "cancelOrderMulti"
	EndpointOrderMultiOp        Endpoint = "orderMultiOp"
	EndpointInvalidateAuthToken Endpoint = "invalidateAuthToken"
	EndpointPayInvoiceCreate    Endpoint = "payInvoiceCreate"
	EndpointPayInvoiceList      Endpoint = "payInvoiceList"
	EndpointPayInvoiceComplete  Endpoint = "payInvoiceComplete"
	EndpointPayDepositsUnlinked Endpoint = "payDepositsUnlinked"

	EndpointStatus        Endpoint = "status"
	EndpointTicker        Endpoint = "ticker"
	EndpointTickers       Endpoint = "tickers"
	EndpointOrderBook     Endpoint = "orderBook"
	EndpointCandles       Endpoint = "candles"
	EndpointCurrencies    Endpoint = "currencies"
	EndpointExchangeRate  Endpoint = "exchangeRate"
	EndpointWallets       Endpoint = "wallets"
	EndpointActiveOrders  Endpoint = "activeOrders"
	EndpointPositions     Endpoint = "positions"
	EndpointUserInfo      Endpoint = "userInfo"
	EndpointSubmitOrder   Endpoint = "submitOrder"
	EndpointCancelOrder   Endpoint = "cancelOrder"
	EndpointGenerateToken Endpoint = "generateToken"
)

var (
	// ErrUnknownEndpoint is returned for names missing from the table
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	// ErrMissingParameter is returned when a required field is nullish
	ErrMissingParameter = errors.New("missing required parameter")
)

// field picks a param into the body, optionally under another name
type field struct {
	key string
	as  string
}

type fixedField struct {
	key   string
	value interface{}
}

func pick(keys ...string) []field {
	f := make([]field, len(keys))
	for i := range keys {
		f[i] = field{key: keys[i]}
	}
	return f
}

type endpointDef struct {
	kind  DispatchKind
	path  string
	limit request.EndpointLimit
	// defaults fill nullish path or query params
	defaults map[string]interface{}
	// query is the declared query parameter order
	query []string
	// body nil forwards the caller's params untouched
	body []field
	// fixed values are always sent, overriding the caller
	fixed    []fixedField
	required []string
	// build replaces path and body resolution entirely
	build     func(p *Params) (string, *Params, error)
	affiliate bool
}

var endpoints = map[Endpoint]endpointDef{
	EndpointTrades: {
		kind:     Public,
		path:     "/trades/{symbol}/hist",
		limit:    tradeRateLimit,
		defaults: map[string]interface{}{"symbol": "tBTCUSD"},
		query:    []string{"start", "end", "limit", "sort"},
	},
	EndpointSymbols:         {kind: Public, path: "/conf/pub:list:pair:exchange", limit: configs},
	EndpointInactiveSymbols: {kind: Public, path: "/conf/pub:list:pair:exchange:inactive", limit: configs},
	EndpointFutures:         {kind: Public, path: "/conf/pub:list:pair:futures", limit: configs},
	EndpointLedgers:         {kind: Authenticated, limit: getLedgers, build: buildLedgers},
	EndpointPublicPulseProfile: {
		kind:  Public,
		path:  "/pulse/profile/{nickname}",
		limit: pulse,
	},
	EndpointAddPulse: {kind: Authenticated, path: "/auth/w/pulse/add", limit: pulseWrite},
	EndpointAddPulseComment: {
		kind:     Authenticated,
		path:     "/auth/w/pulse/add",
		limit:    pulseWrite,
		required: []string{"parent", "content"},
	},
	EndpointFetchPulseComments: {
		kind:     Authenticated,
		path:     "/auth/r/pulse/hist",
		limit:    pulse,
		body:     pick("parent", "limit", "end"),
		fixed:    []fixedField{{key: "isPublic", value: 0}},
		required: []string{"parent"},
	},
	EndpointDeletePulse: {kind: Authenticated, path: "/auth/w/pulse/del", limit: pulseWrite, body: pick("pid")},
	EndpointPublicPulseHistory: {
		kind:  Public,
		path:  "/pulse/hist",
		limit: pulse,
		query: []string{"limit", "end"},
	},
	EndpointPulseHistory: {
		kind:  Authenticated,
		path:  "/auth/r/pulse/hist",
		limit: pulse,
		body:  pick("limit", "end", "isPublic"),
	},
	EndpointGenerateInvoice: {
		kind:  Authenticated,
		path:  "/auth/w/deposit/invoice",
		limit: getDepositAddress,
		body:  pick("currency", "wallet", "amount"),
	},
	EndpointMarketAveragePrice: {
		kind:  PublicPost,
		path:  "/calc/trade/avg",
		limit: marketAveragePrice,
		query: []string{"symbol", "amount", "period", "rate_limit"},
		body:  []field{},
	},
	EndpointKeepFunding: {
		kind:  Authenticated,
		path:  "/auth/w/funding/keep",
		limit: keepFunding,
		body:  pick("type", "id", "changes"),
	},
	EndpointCancelOrderMulti: {
		kind:  Authenticated,
		path:  "/auth/w/order/cancel/multi",
		limit: cancelBatch,
		body:  pick("id", "gid", "cid", "all"),
	},
	EndpointOrderMultiOp: {
		kind:  Authenticated,
		path:  "/auth/w/order/multi",
		limit: orderBatch,
		body:  pick("ops"),
	},
	EndpointInvalidateAuthToken: {
		kind:  Authenticated,
		path:  "/auth/w/token/del",
		limit: authToken,
		body:  []field{{key: "authToken", as: "token"}},
	},
	EndpointPayInvoiceCreate:    {kind: Authenticated, path: "/auth/w/ext/pay/invoice/create", limit: merchant},
	EndpointPayInvoiceList:      {kind: Authenticated, path: "/auth/r/ext/pay/invoices", limit: merchant},
	EndpointPayInvoiceComplete:  {kind: Authenticated, path: "/auth/w/ext/pay/invoice/complete", limit: merchant},
	EndpointPayDepositsUnlinked: {kind: Authenticated, path: "/auth/r/ext/pay/deposits/unlinked", limit: merchant},

	EndpointStatus: {kind: Public, path: "/platform/status", limit: platformStatus},
	EndpointTicker: {
		kind:     Public,
		path:     "/ticker/{symbol}",
		limit:    tickerFunction,
		defaults: map[string]interface{}{"symbol": "tBTCUSD"},
	},
	EndpointTickers: {
		kind:  Public,
		path:  "/tickers",
		limit: tickerBatch,
		query: []string{"symbols"},
	},
	EndpointOrderBook: {
		kind:     Public,
		path:     "/book/{symbol}/{prec}",
		limit:    orderbookFunction,
		defaults: map[string]interface{}{"symbol": "tBTCUSD", "prec": "P0"},
		query:    []string{"len"},
	},
	EndpointCandles: {
		kind:     Public,
		path:     "/candles/trade:{timeframe}:{symbol}/{section}",
		limit:    candle,
		defaults: map[string]interface{}{"timeframe": "1m", "symbol": "tBTCUSD", "section": "hist"},
		query:    []string{"start", "end", "limit", "sort"},
	},
	EndpointCurrencies: {kind: Public, path: "/conf/pub:list:currency", limit: configs},
	EndpointExchangeRate: {
		kind:     PublicPost,
		path:     "/calc/fx",
		limit:    fx,
		body:     pick("ccy1", "ccy2"),
		required: []string{"ccy1", "ccy2"},
	},
	EndpointWallets:      {kind: Authenticated, path: "/auth/r/wallets", limit: accountWalletBalance, body: []field{}},
	EndpointActiveOrders: {kind: Authenticated, path: "/auth/r/orders", limit: retrieveOrder, body: pick("id")},
	EndpointPositions:    {kind: Authenticated, path: "/auth/r/positions", limit: getActivePositions, body: []field{}},
	EndpointUserInfo:     {kind: Authenticated, path: "/auth/r/info/user", limit: getUserInfo, body: []field{}},
	EndpointSubmitOrder: {
		kind:      Authenticated,
		path:      "/auth/w/order/submit",
		limit:     submitOrder,
		required:  []string{"type", "symbol", "amount"},
		affiliate: true,
	},
	EndpointCancelOrder: {
		kind:  Authenticated,
		path:  "/auth/w/order/cancel",
		limit: cancelOrder,
		body:  pick("id", "cid", "cid_date"),
	},
	EndpointGenerateToken: {
		kind:  Authenticated,
		path:  "/auth/w/token",
		limit: authToken,
		body:  pick("ttl", "scope", "writePermission", "caps"),
	},
}

// Endpoints returns every supported endpoint sorted by name
func Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(endpoints))
	for e := range endpoints {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Kind returns the dispatch kind of e, or zero when e is unknown
func (e Endpoint) Kind() DispatchKind {
	return endpoints[e].kind
}

// Descriptor is the wire level shape of one call
type Descriptor struct {
	Endpoint Endpoint
	Kind     DispatchKind
	Method   string
	// URL is relative to the versioned base, e.g. /trades/tBTCUSD/hist?limit=3
	URL string
	// Body is nil for public GET requests
	Body *Params
}

// EncodeBody returns the JSON body sent for the descriptor
func (d *Descriptor) EncodeBody() ([]byte, error) {
	if d.Body == nil {
		return nil, nil
	}
	return d.Body.MarshalJSON()
}

// BuildRequest resolves an endpoint and its params into a Descriptor. It
// performs no I/O and always returns the same result for the same input.
func BuildRequest(e Endpoint, p *Params) (Descriptor, error) {
	def, ok := endpoints[e]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, e)
	}
	for _, k := range def.required {
		if missing(p, k) {
			return Descriptor{}, fmt.Errorf("%s: %w: %s", e, ErrMissingParameter, k)
		}
	}

	d := Descriptor{Endpoint: e, Kind: def.kind, Method: def.kind.Method()}
	if def.build != nil {
		path, body, err := def.build(p)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%s: %w", e, err)
		}
		d.URL, d.Body = path, body
		return d, nil
	}

	path, err := expandPath(def.path, p, def.defaults)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%s: %w", e, err)
	}
	q, err := QueryString(withDefaults(p, def.query, def.defaults), def.query...)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%s: %w", e, err)
	}
	d.URL = path + q

	if def.kind == Public {
		return d, nil
	}
	switch {
	case def.body == nil:
		d.Body = p.Clone()
	default:
		d.Body = &Params{}
		for _, f := range def.body {
			v, _ := p.Get(f.key)
			name := f.key
			if f.as != "" {
				name = f.as
			}
			d.Body.Set(name, v)
		}
	}
	for _, f := range def.fixed {
		d.Body.Set(f.key, f.value)
	}
	return d, nil
}

func missing(p *Params, key string) bool {
	if p.IsNullish(key) {
		return true
	}
	v, _ := p.Get(key)
	s, ok := v.(string)
	return ok && s == ""
}

// withDefaults returns p topped up with defaults for the listed keys
func withDefaults(p *Params, keys []string, defaults map[string]interface{}) *Params {
	if len(defaults) == 0 {
		return p
	}
	out := p.Clone()
	for _, k := range keys {
		if d, ok := defaults[k]; ok && out.IsNullish(k) {
			out.Set(k, d)
		}
	}
	return out
}

// expandPath substitutes {name} segments from p or the defaults
func expandPath(tmpl string, p *Params, defaults map[string]interface{}) (string, error) {
	var sb strings.Builder
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			sb.WriteString(tmpl)
			return sb.String(), nil
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("malformed path template %q", tmpl)
		}
		name := tmpl[open+1 : open+end]
		sb.WriteString(tmpl[:open])

		v, _ := p.Get(name)
		if isNullish(v) {
			v = defaults[name]
		}
		if isNullish(v) {
			return "", fmt.Errorf("%w: %s", ErrMissingParameter, name)
		}
		s, err := formatValue(v)
		if err != nil {
			return "", fmt.Errorf("path parameter %q: %w", name, err)
		}
		if s == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingParameter, name)
		}
		sb.WriteString(url.PathEscape(s))
		tmpl = tmpl[open+end+1:]
	}
}

// buildLedgers accepts filters as a currency string or as a set holding ccy
// and category
func buildLedgers(p *Params) (string, *Params, error) {
	var ccy, category interface{}
	if f, ok := p.Get("filters"); ok && !isNullish(f) {
		switch filters := f.(type) {
		case string:
			ccy = filters
		case *Params:
			ccy, _ = filters.Get("ccy")
			category, _ = filters.Get("category")
		case map[string]interface{}:
			ccy = filters["ccy"]
			category = filters["category"]
		default:
			return "", nil, fmt.Errorf("%w: filters %T", errUnsupportedValue, f)
		}
	}

	path := "/auth/r/ledgers/hist"
	if !isNullish(ccy) {
		s, err := formatValue(ccy)
		if err != nil {
			return "", nil, err
		}
		if s != "" {
			path = "/auth/r/ledgers/" + url.PathEscape(s) + "/hist"
		}
	}

	body := &Params{}
	for _, k := range []string{"start", "end", "limit"} {
		v, _ := p.Get(k)
		body.Set(k, v)
	}
	body.Set("category", category)
	return path, body, nil
}
