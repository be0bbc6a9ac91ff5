package bitfinex

import (
	"context"
	"encoding/json"
)

// Trades returns historic trades for a symbol, tBTCUSD by default
func (r *RESTv2) Trades(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointTrades, p)
}

// Symbols returns the active exchange pairs
func (r *RESTv2) Symbols(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointSymbols, p)
}

// InactiveSymbols returns the delisted exchange pairs
func (r *RESTv2) InactiveSymbols(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointInactiveSymbols, p)
}

// Futures returns the futures pairs
func (r *RESTv2) Futures(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointFutures, p)
}

// Ledgers returns ledger entries. filters may be a currency string or Params holding ccy and category
func (r *RESTv2) Ledgers(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointLedgers, p)
}

// PublicPulseProfile returns the public Pulse profile for nickname
func (r *RESTv2) PublicPulseProfile(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointPublicPulseProfile, p)
}

// AddPulse publishes a Pulse message
func (r *RESTv2) AddPulse(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointAddPulse, p)
}

// AddPulseComment publishes a comment under the parent Pulse
func (r *RESTv2) AddPulseComment(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointAddPulseComment, p)
}

// FetchPulseComments returns the comments under the parent Pulse
func (r *RESTv2) FetchPulseComments(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointFetchPulseComments, p)
}

// DeletePulse deletes the Pulse with pid
func (r *RESTv2) DeletePulse(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointDeletePulse, p)
}

// PublicPulseHistory returns the latest public Pulse messages
func (r *RESTv2) PublicPulseHistory(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointPublicPulseHistory, p)
}

// PulseHistory returns the account's Pulse messages
func (r *RESTv2) PulseHistory(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointPulseHistory, p)
}

// GenerateInvoice generates a Lightning Network deposit invoice
func (r *RESTv2) GenerateInvoice(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointGenerateInvoice, p)
}

// MarketAveragePrice calculates the average execution price for an amount
func (r *RESTv2) MarketAveragePrice(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointMarketAveragePrice, p)
}

// KeepFunding toggles keep funding on a loan or credit
func (r *RESTv2) KeepFunding(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointKeepFunding, p)
}

// CancelOrderMulti cancels orders by id, gid, cid or all
func (r *RESTv2) CancelOrderMulti(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointCancelOrderMulti, p)
}

// OrderMultiOp sends a batch of order operations
func (r *RESTv2) OrderMultiOp(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointOrderMultiOp, p)
}

// InvalidateAuthToken deletes the auth token passed as authToken
func (r *RESTv2) InvalidateAuthToken(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointInvalidateAuthToken, p)
}

// PayInvoiceCreate creates a merchant payment invoice
func (r *RESTv2) PayInvoiceCreate(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointPayInvoiceCreate, p)
}

// PayInvoiceList lists merchant payment invoices
func (r *RESTv2) PayInvoiceList(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointPayInvoiceList, p)
}

// PayInvoiceComplete manually completes a merchant payment invoice
func (r *RESTv2) PayInvoiceComplete(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointPayInvoiceComplete, p)
}

// PayDepositsUnlinked lists merchant deposits not linked to an invoice
func (r *RESTv2) PayDepositsUnlinked(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointPayDepositsUnlinked, p)
}

// Status returns the platform operative status
func (r *RESTv2) Status(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointStatus, p)
}

// Ticker returns the ticker for a symbol, tBTCUSD by default
func (r *RESTv2) Ticker(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointTicker, p)
}

// Tickers returns tickers for the comma joined symbols
func (r *RESTv2) Tickers(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointTickers, p)
}

// OrderBook returns the order book for a symbol at precision prec
func (r *RESTv2) OrderBook(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointOrderBook, p)
}

// Candles returns candles for a timeframe and symbol
func (r *RESTv2) Candles(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointCandles, p)
}

// Currencies returns the listed currencies
func (r *RESTv2) Currencies(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointCurrencies, p)
}

// ExchangeRate returns the foreign exchange rate between ccy1 and ccy2
func (r *RESTv2) ExchangeRate(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointExchangeRate, p)
}

// Wallets returns the account wallets
func (r *RESTv2) Wallets(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointWallets, p)
}

// ActiveOrders returns the open orders, optionally filtered by id
func (r *RESTv2) ActiveOrders(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointActiveOrders, p)
}

// Positions returns the active positions
func (r *RESTv2) Positions(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointPositions, p)
}

// UserInfo returns the account's user info
func (r *RESTv2) UserInfo(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointUserInfo, p)
}

// SubmitOrder submits an order. The affiliate code is attached when one is configured
func (r *RESTv2) SubmitOrder(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointSubmitOrder, p)
}

// CancelOrder cancels a single order by id or cid and cid_date
func (r *RESTv2) CancelOrder(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointCancelOrder, p)
}

// GenerateToken creates an auth token
func (r *RESTv2) GenerateToken(ctx context.Context, p *Params) (json.RawMessage, error) {
	return r.call(ctx, EndpointGenerateToken, p)
}

// Do calls endpoint e by name
func (r *RESTv2) Do(ctx context.Context, e Endpoint, p *Params) (json.RawMessage, error) {
	return r.call(ctx, e, p)
}
