package bitfinex

import (
	"time"

	"github.com/thrasher-corp/bfxrest/exchanges/request"
)

const (
	// Bitfinex rate limits - Public
	requestLimitInterval      = time.Minute
	platformStatusReqRate     = 15
	tickerBatchReqRate        = 30
	tickerReqRate             = 30
	tradeReqRate              = 30
	orderbookReqRate          = 30
	candleReqRate             = 60
	configsReqRate            = 15
	pulseReqRate              = 30 // This is not specified just inputed WCS
	marketAveragePriceReqRate = 20
	fxReqRate                 = 20

	// Bitfinex rate limits - Authenticated
	accountWalletBalanceReqRate = 45
	retrieveOrderReqRate        = 45
	submitOrderReqRate          = 45 // This is not specified just inputed above
	cancelOrderReqRate          = 45 // This is not specified just inputed above
	orderBatchReqRate           = 45 // This is not specified just inputed above
	cancelBatchReqRate          = 45 // This is not specified just inputed above
	getLedgersReqRate           = 45
	getActivePositionsReqRate   = 45
	keepFundingReqRate          = 45 // This is not specified just inputed above
	getUserInfoReqRate          = 45
	getDepositAddressReqRate    = 45 // This is not specified just inputed above
	authTokenReqRate            = 45 // This is not specified just inputed above
	pulseWriteReqRate           = 45 // This is not specified just inputed above
	merchantReqRate             = 45 // This is not specified just inputed above
)

// Rate limit endpoint functionality declaration. Values start past the
// requester's generic groups.
const (
	platformStatus request.EndpointLimit = iota + request.UnAuth + 1
	tickerBatch
	tickerFunction
	tradeRateLimit
	orderbookFunction
	candle
	configs
	pulse
	marketAveragePrice
	fx

	accountWalletBalance
	retrieveOrder
	submitOrder
	cancelOrder
	orderBatch
	cancelBatch
	getLedgers
	getActivePositions
	keepFunding
	getUserInfo
	getDepositAddress
	authToken
	pulseWrite
	merchant
)

// SetRateLimit returns the per endpoint rate limits for the exchange
func SetRateLimit() request.RateLimitDefinitions {
	return request.RateLimitDefinitions{
		request.Auth:   request.NewRateLimit(requestLimitInterval, accountWalletBalanceReqRate),
		request.UnAuth: request.NewRateLimit(requestLimitInterval, configsReqRate),

		platformStatus:     request.NewRateLimit(requestLimitInterval, platformStatusReqRate),
		tickerBatch:        request.NewRateLimit(requestLimitInterval, tickerBatchReqRate),
		tickerFunction:     request.NewRateLimit(requestLimitInterval, tickerReqRate),
		tradeRateLimit:     request.NewRateLimit(requestLimitInterval, tradeReqRate),
		orderbookFunction:  request.NewRateLimit(requestLimitInterval, orderbookReqRate),
		candle:             request.NewRateLimit(requestLimitInterval, candleReqRate),
		configs:            request.NewRateLimit(requestLimitInterval, configsReqRate),
		pulse:              request.NewRateLimit(requestLimitInterval, pulseReqRate),
		marketAveragePrice: request.NewRateLimit(requestLimitInterval, marketAveragePriceReqRate),
		fx:                 request.NewRateLimit(requestLimitInterval, fxReqRate),

		accountWalletBalance: request.NewRateLimit(requestLimitInterval, accountWalletBalanceReqRate),
		retrieveOrder:        request.NewRateLimit(requestLimitInterval, retrieveOrderReqRate),
		submitOrder:          request.NewRateLimit(requestLimitInterval, submitOrderReqRate),
		cancelOrder:          request.NewRateLimit(requestLimitInterval, cancelOrderReqRate),
		orderBatch:           request.NewRateLimit(requestLimitInterval, orderBatchReqRate),
		cancelBatch:          request.NewRateLimit(requestLimitInterval, cancelBatchReqRate),
		getLedgers:           request.NewRateLimit(requestLimitInterval, getLedgersReqRate),
		getActivePositions:   request.NewRateLimit(requestLimitInterval, getActivePositionsReqRate),
		keepFunding:          request.NewRateLimit(requestLimitInterval, keepFundingReqRate),
		getUserInfo:          request.NewRateLimit(requestLimitInterval, getUserInfoReqRate),
		getDepositAddress:    request.NewRateLimit(requestLimitInterval, getDepositAddressReqRate),
		authToken:            request.NewRateLimit(requestLimitInterval, authTokenReqRate),
		pulseWrite:           request.NewRateLimit(requestLimitInterval, pulseWriteReqRate),
		merchant:             request.NewRateLimit(requestLimitInterval, merchantReqRate),
	}
}

// SetSharedRateLimit returns definitions where every endpoint draws from one
// limiter allowing requests per interval
func SetSharedRateLimit(interval time.Duration, requests int) request.RateLimitDefinitions {
	l := request.NewRateLimit(interval, requests)
	defs := SetRateLimit()
	for k := range defs {
		defs[k] = l
	}
	return defs
}
