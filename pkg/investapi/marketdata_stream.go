package investapi

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// SubscriptionAction subscribes or unsubscribes a stream request.
type SubscriptionAction int32

const (
	SubscriptionAction_SUBSCRIPTION_ACTION_UNSPECIFIED SubscriptionAction = 0
	SubscriptionAction_SUBSCRIPTION_ACTION_SUBSCRIBE   SubscriptionAction = 1
	SubscriptionAction_SUBSCRIPTION_ACTION_UNSUBSCRIBE SubscriptionAction = 2
)

var subscriptionActionName = map[int32]string{
	0: "SUBSCRIPTION_ACTION_UNSPECIFIED",
	1: "SUBSCRIPTION_ACTION_SUBSCRIBE",
	2: "SUBSCRIPTION_ACTION_UNSUBSCRIBE",
}

func (x SubscriptionAction) String() string { return enumName(subscriptionActionName, int32(x)) }

// SubscriptionInterval is the candle period available on the stream.
type SubscriptionInterval int32

const (
	SubscriptionInterval_SUBSCRIPTION_INTERVAL_UNSPECIFIED  SubscriptionInterval = 0
	SubscriptionInterval_SUBSCRIPTION_INTERVAL_ONE_MINUTE   SubscriptionInterval = 1
	SubscriptionInterval_SUBSCRIPTION_INTERVAL_FIVE_MINUTES SubscriptionInterval = 2
)

var subscriptionIntervalName = map[int32]string{
	0: "SUBSCRIPTION_INTERVAL_UNSPECIFIED",
	1: "SUBSCRIPTION_INTERVAL_ONE_MINUTE",
	2: "SUBSCRIPTION_INTERVAL_FIVE_MINUTES",
}

func (x SubscriptionInterval) String() string { return enumName(subscriptionIntervalName, int32(x)) }

// SubscriptionStatus is the per-instrument result of a subscribe request.
type SubscriptionStatus int32

const (
	SubscriptionStatus_SUBSCRIPTION_STATUS_UNSPECIFIED                    SubscriptionStatus = 0
	SubscriptionStatus_SUBSCRIPTION_STATUS_SUCCESS                        SubscriptionStatus = 1
	SubscriptionStatus_SUBSCRIPTION_STATUS_INSTRUMENT_NOT_FOUND           SubscriptionStatus = 2
	SubscriptionStatus_SUBSCRIPTION_STATUS_SUBSCRIPTION_ACTION_IS_INVALID SubscriptionStatus = 3
	SubscriptionStatus_SUBSCRIPTION_STATUS_DEPTH_IS_INVALID               SubscriptionStatus = 4
	SubscriptionStatus_SUBSCRIPTION_STATUS_INTERVAL_IS_INVALID            SubscriptionStatus = 5
	SubscriptionStatus_SUBSCRIPTION_STATUS_LIMIT_IS_EXCEEDED              SubscriptionStatus = 6
	SubscriptionStatus_SUBSCRIPTION_STATUS_INTERNAL_ERROR                 SubscriptionStatus = 7
	SubscriptionStatus_SUBSCRIPTION_STATUS_TOO_MANY_REQUESTS              SubscriptionStatus = 8
	SubscriptionStatus_SUBSCRIPTION_STATUS_SUBSCRIPTION_NOT_FOUND         SubscriptionStatus = 9
)

var subscriptionStatusName = map[int32]string{
	0: "SUBSCRIPTION_STATUS_UNSPECIFIED",
	1: "SUBSCRIPTION_STATUS_SUCCESS",
	2: "SUBSCRIPTION_STATUS_INSTRUMENT_NOT_FOUND",
	3: "SUBSCRIPTION_STATUS_SUBSCRIPTION_ACTION_IS_INVALID",
	4: "SUBSCRIPTION_STATUS_DEPTH_IS_INVALID",
	5: "SUBSCRIPTION_STATUS_INTERVAL_IS_INVALID",
	6: "SUBSCRIPTION_STATUS_LIMIT_IS_EXCEEDED",
	7: "SUBSCRIPTION_STATUS_INTERNAL_ERROR",
	8: "SUBSCRIPTION_STATUS_TOO_MANY_REQUESTS",
	9: "SUBSCRIPTION_STATUS_SUBSCRIPTION_NOT_FOUND",
}

func (x SubscriptionStatus) String() string { return enumName(subscriptionStatusName, int32(x)) }

// MarketDataRequest is the client-to-server frame of the market data stream.
type MarketDataRequest struct {
	// Types that are valid to be assigned to Payload:
	//	*MarketDataRequest_SubscribeCandlesRequest
	//	*MarketDataRequest_SubscribeOrderBookRequest
	//	*MarketDataRequest_SubscribeTradesRequest
	//	*MarketDataRequest_SubscribeInfoRequest
	//	*MarketDataRequest_SubscribeLastPriceRequest
	//	*MarketDataRequest_GetMySubscriptions
	Payload isMarketDataRequest_Payload `protobuf_oneof:"payload"`
}

func (m *MarketDataRequest) Reset()         { *m = MarketDataRequest{} }
func (m *MarketDataRequest) String() string { return messageString(m) }
func (*MarketDataRequest) ProtoMessage()    {}

type isMarketDataRequest_Payload interface {
	isMarketDataRequest_Payload()
}

type MarketDataRequest_SubscribeCandlesRequest struct {
	SubscribeCandlesRequest *SubscribeCandlesRequest `protobuf:"bytes,1,opt,name=subscribe_candles_request,json=subscribeCandlesRequest,proto3,oneof"`
}

type MarketDataRequest_SubscribeOrderBookRequest struct {
	SubscribeOrderBookRequest *SubscribeOrderBookRequest `protobuf:"bytes,2,opt,name=subscribe_order_book_request,json=subscribeOrderBookRequest,proto3,oneof"`
}

type MarketDataRequest_SubscribeTradesRequest struct {
	SubscribeTradesRequest *SubscribeTradesRequest `protobuf:"bytes,3,opt,name=subscribe_trades_request,json=subscribeTradesRequest,proto3,oneof"`
}

type MarketDataRequest_SubscribeInfoRequest struct {
	SubscribeInfoRequest *SubscribeInfoRequest `protobuf:"bytes,4,opt,name=subscribe_info_request,json=subscribeInfoRequest,proto3,oneof"`
}

type MarketDataRequest_SubscribeLastPriceRequest struct {
	SubscribeLastPriceRequest *SubscribeLastPriceRequest `protobuf:"bytes,5,opt,name=subscribe_last_price_request,json=subscribeLastPriceRequest,proto3,oneof"`
}

type MarketDataRequest_GetMySubscriptions struct {
	GetMySubscriptions *GetMySubscriptions `protobuf:"bytes,6,opt,name=get_my_subscriptions,json=getMySubscriptions,proto3,oneof"`
}

func (*MarketDataRequest_SubscribeCandlesRequest) isMarketDataRequest_Payload() {}

func (*MarketDataRequest_SubscribeOrderBookRequest) isMarketDataRequest_Payload() {}

func (*MarketDataRequest_SubscribeTradesRequest) isMarketDataRequest_Payload() {}

func (*MarketDataRequest_SubscribeInfoRequest) isMarketDataRequest_Payload() {}

func (*MarketDataRequest_SubscribeLastPriceRequest) isMarketDataRequest_Payload() {}

func (*MarketDataRequest_GetMySubscriptions) isMarketDataRequest_Payload() {}

func (m *MarketDataRequest) GetPayload() isMarketDataRequest_Payload {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *MarketDataRequest) GetSubscribeCandlesRequest() *SubscribeCandlesRequest {
	if x, ok := m.GetPayload().(*MarketDataRequest_SubscribeCandlesRequest); ok {
		return x.SubscribeCandlesRequest
	}
	return nil
}

func (m *MarketDataRequest) GetSubscribeOrderBookRequest() *SubscribeOrderBookRequest {
	if x, ok := m.GetPayload().(*MarketDataRequest_SubscribeOrderBookRequest); ok {
		return x.SubscribeOrderBookRequest
	}
	return nil
}

func (m *MarketDataRequest) GetSubscribeTradesRequest() *SubscribeTradesRequest {
	if x, ok := m.GetPayload().(*MarketDataRequest_SubscribeTradesRequest); ok {
		return x.SubscribeTradesRequest
	}
	return nil
}

func (m *MarketDataRequest) GetSubscribeInfoRequest() *SubscribeInfoRequest {
	if x, ok := m.GetPayload().(*MarketDataRequest_SubscribeInfoRequest); ok {
		return x.SubscribeInfoRequest
	}
	return nil
}

func (m *MarketDataRequest) GetSubscribeLastPriceRequest() *SubscribeLastPriceRequest {
	if x, ok := m.GetPayload().(*MarketDataRequest_SubscribeLastPriceRequest); ok {
		return x.SubscribeLastPriceRequest
	}
	return nil
}

func (m *MarketDataRequest) GetGetMySubscriptions() *GetMySubscriptions {
	if x, ok := m.GetPayload().(*MarketDataRequest_GetMySubscriptions); ok {
		return x.GetMySubscriptions
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*MarketDataRequest) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*MarketDataRequest_SubscribeCandlesRequest)(nil),
		(*MarketDataRequest_SubscribeOrderBookRequest)(nil),
		(*MarketDataRequest_SubscribeTradesRequest)(nil),
		(*MarketDataRequest_SubscribeInfoRequest)(nil),
		(*MarketDataRequest_SubscribeLastPriceRequest)(nil),
		(*MarketDataRequest_GetMySubscriptions)(nil),
	}
}

type SubscribeCandlesRequest struct {
	SubscriptionAction SubscriptionAction  `protobuf:"varint,1,opt,name=subscription_action,json=subscriptionAction,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionAction" json:"subscription_action,omitempty"`
	Instruments        []*CandleInstrument `protobuf:"bytes,2,rep,name=instruments,proto3" json:"instruments,omitempty"`
	WaitingClose       bool                `protobuf:"varint,3,opt,name=waiting_close,json=waitingClose,proto3" json:"waiting_close,omitempty"`
}

func (m *SubscribeCandlesRequest) Reset()         { *m = SubscribeCandlesRequest{} }
func (m *SubscribeCandlesRequest) String() string { return messageString(m) }
func (*SubscribeCandlesRequest) ProtoMessage()    {}

type CandleInstrument struct {
	Figi         string               `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Interval     SubscriptionInterval `protobuf:"varint,2,opt,name=interval,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionInterval" json:"interval,omitempty"`
	InstrumentId string               `protobuf:"bytes,3,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *CandleInstrument) Reset()         { *m = CandleInstrument{} }
func (m *CandleInstrument) String() string { return messageString(m) }
func (*CandleInstrument) ProtoMessage()    {}

type SubscribeOrderBookRequest struct {
	SubscriptionAction SubscriptionAction     `protobuf:"varint,1,opt,name=subscription_action,json=subscriptionAction,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionAction" json:"subscription_action,omitempty"`
	Instruments        []*OrderBookInstrument `protobuf:"bytes,2,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *SubscribeOrderBookRequest) Reset()         { *m = SubscribeOrderBookRequest{} }
func (m *SubscribeOrderBookRequest) String() string { return messageString(m) }
func (*SubscribeOrderBookRequest) ProtoMessage()    {}

type OrderBookInstrument struct {
	Figi         string `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Depth        int32  `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	InstrumentId string `protobuf:"bytes,3,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *OrderBookInstrument) Reset()         { *m = OrderBookInstrument{} }
func (m *OrderBookInstrument) String() string { return messageString(m) }
func (*OrderBookInstrument) ProtoMessage()    {}

type SubscribeTradesRequest struct {
	SubscriptionAction SubscriptionAction `protobuf:"varint,1,opt,name=subscription_action,json=subscriptionAction,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionAction" json:"subscription_action,omitempty"`
	Instruments        []*TradeInstrument `protobuf:"bytes,2,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *SubscribeTradesRequest) Reset()         { *m = SubscribeTradesRequest{} }
func (m *SubscribeTradesRequest) String() string { return messageString(m) }
func (*SubscribeTradesRequest) ProtoMessage()    {}

type TradeInstrument struct {
	Figi         string `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	InstrumentId string `protobuf:"bytes,2,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *TradeInstrument) Reset()         { *m = TradeInstrument{} }
func (m *TradeInstrument) String() string { return messageString(m) }
func (*TradeInstrument) ProtoMessage()    {}

type SubscribeInfoRequest struct {
	SubscriptionAction SubscriptionAction `protobuf:"varint,1,opt,name=subscription_action,json=subscriptionAction,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionAction" json:"subscription_action,omitempty"`
	Instruments        []*InfoInstrument  `protobuf:"bytes,2,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *SubscribeInfoRequest) Reset()         { *m = SubscribeInfoRequest{} }
func (m *SubscribeInfoRequest) String() string { return messageString(m) }
func (*SubscribeInfoRequest) ProtoMessage()    {}

type InfoInstrument struct {
	Figi         string `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	InstrumentId string `protobuf:"bytes,2,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *InfoInstrument) Reset()         { *m = InfoInstrument{} }
func (m *InfoInstrument) String() string { return messageString(m) }
func (*InfoInstrument) ProtoMessage()    {}

type SubscribeLastPriceRequest struct {
	SubscriptionAction SubscriptionAction     `protobuf:"varint,1,opt,name=subscription_action,json=subscriptionAction,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionAction" json:"subscription_action,omitempty"`
	Instruments        []*LastPriceInstrument `protobuf:"bytes,2,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *SubscribeLastPriceRequest) Reset()         { *m = SubscribeLastPriceRequest{} }
func (m *SubscribeLastPriceRequest) String() string { return messageString(m) }
func (*SubscribeLastPriceRequest) ProtoMessage()    {}

type LastPriceInstrument struct {
	Figi         string `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	InstrumentId string `protobuf:"bytes,2,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *LastPriceInstrument) Reset()         { *m = LastPriceInstrument{} }
func (m *LastPriceInstrument) String() string { return messageString(m) }
func (*LastPriceInstrument) ProtoMessage()    {}

type GetMySubscriptions struct{}

func (m *GetMySubscriptions) Reset()         { *m = GetMySubscriptions{} }
func (m *GetMySubscriptions) String() string { return messageString(m) }
func (*GetMySubscriptions) ProtoMessage()    {}

// MarketDataResponse is the server-to-client frame of the market data stream.
type MarketDataResponse struct {
	// Types that are valid to be assigned to Payload:
	//	*MarketDataResponse_SubscribeCandlesResponse
	//	*MarketDataResponse_SubscribeOrderBookResponse
	//	*MarketDataResponse_SubscribeTradesResponse
	//	*MarketDataResponse_SubscribeInfoResponse
	//	*MarketDataResponse_Candle
	//	*MarketDataResponse_Trade
	//	*MarketDataResponse_Orderbook
	//	*MarketDataResponse_TradingStatus
	//	*MarketDataResponse_Ping
	//	*MarketDataResponse_SubscribeLastPriceResponse
	//	*MarketDataResponse_LastPrice
	Payload isMarketDataResponse_Payload `protobuf_oneof:"payload"`
}

func (m *MarketDataResponse) Reset()         { *m = MarketDataResponse{} }
func (m *MarketDataResponse) String() string { return messageString(m) }
func (*MarketDataResponse) ProtoMessage()    {}

type isMarketDataResponse_Payload interface {
	isMarketDataResponse_Payload()
}

type MarketDataResponse_SubscribeCandlesResponse struct {
	SubscribeCandlesResponse *SubscribeCandlesResponse `protobuf:"bytes,1,opt,name=subscribe_candles_response,json=subscribeCandlesResponse,proto3,oneof"`
}

type MarketDataResponse_SubscribeOrderBookResponse struct {
	SubscribeOrderBookResponse *SubscribeOrderBookResponse `protobuf:"bytes,2,opt,name=subscribe_order_book_response,json=subscribeOrderBookResponse,proto3,oneof"`
}

type MarketDataResponse_SubscribeTradesResponse struct {
	SubscribeTradesResponse *SubscribeTradesResponse `protobuf:"bytes,3,opt,name=subscribe_trades_response,json=subscribeTradesResponse,proto3,oneof"`
}

type MarketDataResponse_SubscribeInfoResponse struct {
	SubscribeInfoResponse *SubscribeInfoResponse `protobuf:"bytes,4,opt,name=subscribe_info_response,json=subscribeInfoResponse,proto3,oneof"`
}

type MarketDataResponse_Candle struct {
	Candle *Candle `protobuf:"bytes,5,opt,name=candle,proto3,oneof"`
}

type MarketDataResponse_Trade struct {
	Trade *Trade `protobuf:"bytes,6,opt,name=trade,proto3,oneof"`
}

type MarketDataResponse_Orderbook struct {
	Orderbook *OrderBook `protobuf:"bytes,7,opt,name=orderbook,proto3,oneof"`
}

type MarketDataResponse_TradingStatus struct {
	TradingStatus *TradingStatus `protobuf:"bytes,8,opt,name=trading_status,json=tradingStatus,proto3,oneof"`
}

type MarketDataResponse_Ping struct {
	Ping *Ping `protobuf:"bytes,9,opt,name=ping,proto3,oneof"`
}

type MarketDataResponse_SubscribeLastPriceResponse struct {
	SubscribeLastPriceResponse *SubscribeLastPriceResponse `protobuf:"bytes,10,opt,name=subscribe_last_price_response,json=subscribeLastPriceResponse,proto3,oneof"`
}

type MarketDataResponse_LastPrice struct {
	LastPrice *LastPrice `protobuf:"bytes,11,opt,name=last_price,json=lastPrice,proto3,oneof"`
}

func (*MarketDataResponse_SubscribeCandlesResponse) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_SubscribeOrderBookResponse) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_SubscribeTradesResponse) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_SubscribeInfoResponse) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_Candle) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_Trade) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_Orderbook) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_TradingStatus) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_Ping) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_SubscribeLastPriceResponse) isMarketDataResponse_Payload() {}

func (*MarketDataResponse_LastPrice) isMarketDataResponse_Payload() {}

func (m *MarketDataResponse) GetPayload() isMarketDataResponse_Payload {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *MarketDataResponse) GetSubscribeCandlesResponse() *SubscribeCandlesResponse {
	if x, ok := m.GetPayload().(*MarketDataResponse_SubscribeCandlesResponse); ok {
		return x.SubscribeCandlesResponse
	}
	return nil
}

func (m *MarketDataResponse) GetSubscribeOrderBookResponse() *SubscribeOrderBookResponse {
	if x, ok := m.GetPayload().(*MarketDataResponse_SubscribeOrderBookResponse); ok {
		return x.SubscribeOrderBookResponse
	}
	return nil
}

func (m *MarketDataResponse) GetSubscribeTradesResponse() *SubscribeTradesResponse {
	if x, ok := m.GetPayload().(*MarketDataResponse_SubscribeTradesResponse); ok {
		return x.SubscribeTradesResponse
	}
	return nil
}

func (m *MarketDataResponse) GetSubscribeInfoResponse() *SubscribeInfoResponse {
	if x, ok := m.GetPayload().(*MarketDataResponse_SubscribeInfoResponse); ok {
		return x.SubscribeInfoResponse
	}
	return nil
}

func (m *MarketDataResponse) GetCandle() *Candle {
	if x, ok := m.GetPayload().(*MarketDataResponse_Candle); ok {
		return x.Candle
	}
	return nil
}

func (m *MarketDataResponse) GetTrade() *Trade {
	if x, ok := m.GetPayload().(*MarketDataResponse_Trade); ok {
		return x.Trade
	}
	return nil
}

func (m *MarketDataResponse) GetOrderbook() *OrderBook {
	if x, ok := m.GetPayload().(*MarketDataResponse_Orderbook); ok {
		return x.Orderbook
	}
	return nil
}

func (m *MarketDataResponse) GetTradingStatus() *TradingStatus {
	if x, ok := m.GetPayload().(*MarketDataResponse_TradingStatus); ok {
		return x.TradingStatus
	}
	return nil
}

func (m *MarketDataResponse) GetPing() *Ping {
	if x, ok := m.GetPayload().(*MarketDataResponse_Ping); ok {
		return x.Ping
	}
	return nil
}

func (m *MarketDataResponse) GetSubscribeLastPriceResponse() *SubscribeLastPriceResponse {
	if x, ok := m.GetPayload().(*MarketDataResponse_SubscribeLastPriceResponse); ok {
		return x.SubscribeLastPriceResponse
	}
	return nil
}

func (m *MarketDataResponse) GetLastPrice() *LastPrice {
	if x, ok := m.GetPayload().(*MarketDataResponse_LastPrice); ok {
		return x.LastPrice
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*MarketDataResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*MarketDataResponse_SubscribeCandlesResponse)(nil),
		(*MarketDataResponse_SubscribeOrderBookResponse)(nil),
		(*MarketDataResponse_SubscribeTradesResponse)(nil),
		(*MarketDataResponse_SubscribeInfoResponse)(nil),
		(*MarketDataResponse_Candle)(nil),
		(*MarketDataResponse_Trade)(nil),
		(*MarketDataResponse_Orderbook)(nil),
		(*MarketDataResponse_TradingStatus)(nil),
		(*MarketDataResponse_Ping)(nil),
		(*MarketDataResponse_SubscribeLastPriceResponse)(nil),
		(*MarketDataResponse_LastPrice)(nil),
	}
}

type SubscribeCandlesResponse struct {
	TrackingId           string                `protobuf:"bytes,1,opt,name=tracking_id,json=trackingId,proto3" json:"tracking_id,omitempty"`
	CandlesSubscriptions []*CandleSubscription `protobuf:"bytes,2,rep,name=candles_subscriptions,json=candlesSubscriptions,proto3" json:"candles_subscriptions,omitempty"`
}

func (m *SubscribeCandlesResponse) Reset()         { *m = SubscribeCandlesResponse{} }
func (m *SubscribeCandlesResponse) String() string { return messageString(m) }
func (*SubscribeCandlesResponse) ProtoMessage()    {}

func (m *SubscribeCandlesResponse) GetCandlesSubscriptions() []*CandleSubscription {
	if m != nil {
		return m.CandlesSubscriptions
	}
	return nil
}

type CandleSubscription struct {
	Figi               string               `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Interval           SubscriptionInterval `protobuf:"varint,2,opt,name=interval,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionInterval" json:"interval,omitempty"`
	SubscriptionStatus SubscriptionStatus   `protobuf:"varint,3,opt,name=subscription_status,json=subscriptionStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionStatus" json:"subscription_status,omitempty"`
	InstrumentUid      string               `protobuf:"bytes,4,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *CandleSubscription) Reset()         { *m = CandleSubscription{} }
func (m *CandleSubscription) String() string { return messageString(m) }
func (*CandleSubscription) ProtoMessage()    {}

type SubscribeOrderBookResponse struct {
	TrackingId             string                   `protobuf:"bytes,1,opt,name=tracking_id,json=trackingId,proto3" json:"tracking_id,omitempty"`
	OrderBookSubscriptions []*OrderBookSubscription `protobuf:"bytes,2,rep,name=order_book_subscriptions,json=orderBookSubscriptions,proto3" json:"order_book_subscriptions,omitempty"`
}

func (m *SubscribeOrderBookResponse) Reset()         { *m = SubscribeOrderBookResponse{} }
func (m *SubscribeOrderBookResponse) String() string { return messageString(m) }
func (*SubscribeOrderBookResponse) ProtoMessage()    {}

type OrderBookSubscription struct {
	Figi               string             `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Depth              int32              `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	SubscriptionStatus SubscriptionStatus `protobuf:"varint,3,opt,name=subscription_status,json=subscriptionStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionStatus" json:"subscription_status,omitempty"`
	InstrumentUid      string             `protobuf:"bytes,4,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *OrderBookSubscription) Reset()         { *m = OrderBookSubscription{} }
func (m *OrderBookSubscription) String() string { return messageString(m) }
func (*OrderBookSubscription) ProtoMessage()    {}

type SubscribeTradesResponse struct {
	TrackingId         string               `protobuf:"bytes,1,opt,name=tracking_id,json=trackingId,proto3" json:"tracking_id,omitempty"`
	TradeSubscriptions []*TradeSubscription `protobuf:"bytes,2,rep,name=trade_subscriptions,json=tradeSubscriptions,proto3" json:"trade_subscriptions,omitempty"`
}

func (m *SubscribeTradesResponse) Reset()         { *m = SubscribeTradesResponse{} }
func (m *SubscribeTradesResponse) String() string { return messageString(m) }
func (*SubscribeTradesResponse) ProtoMessage()    {}

type TradeSubscription struct {
	Figi               string             `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	SubscriptionStatus SubscriptionStatus `protobuf:"varint,2,opt,name=subscription_status,json=subscriptionStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionStatus" json:"subscription_status,omitempty"`
	InstrumentUid      string             `protobuf:"bytes,3,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *TradeSubscription) Reset()         { *m = TradeSubscription{} }
func (m *TradeSubscription) String() string { return messageString(m) }
func (*TradeSubscription) ProtoMessage()    {}

type SubscribeInfoResponse struct {
	TrackingId        string              `protobuf:"bytes,1,opt,name=tracking_id,json=trackingId,proto3" json:"tracking_id,omitempty"`
	InfoSubscriptions []*InfoSubscription `protobuf:"bytes,2,rep,name=info_subscriptions,json=infoSubscriptions,proto3" json:"info_subscriptions,omitempty"`
}

func (m *SubscribeInfoResponse) Reset()         { *m = SubscribeInfoResponse{} }
func (m *SubscribeInfoResponse) String() string { return messageString(m) }
func (*SubscribeInfoResponse) ProtoMessage()    {}

type InfoSubscription struct {
	Figi               string             `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	SubscriptionStatus SubscriptionStatus `protobuf:"varint,2,opt,name=subscription_status,json=subscriptionStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionStatus" json:"subscription_status,omitempty"`
	InstrumentUid      string             `protobuf:"bytes,3,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *InfoSubscription) Reset()         { *m = InfoSubscription{} }
func (m *InfoSubscription) String() string { return messageString(m) }
func (*InfoSubscription) ProtoMessage()    {}

type SubscribeLastPriceResponse struct {
	TrackingId             string                   `protobuf:"bytes,1,opt,name=tracking_id,json=trackingId,proto3" json:"tracking_id,omitempty"`
	LastPriceSubscriptions []*LastPriceSubscription `protobuf:"bytes,2,rep,name=last_price_subscriptions,json=lastPriceSubscriptions,proto3" json:"last_price_subscriptions,omitempty"`
}

func (m *SubscribeLastPriceResponse) Reset()         { *m = SubscribeLastPriceResponse{} }
func (m *SubscribeLastPriceResponse) String() string { return messageString(m) }
func (*SubscribeLastPriceResponse) ProtoMessage()    {}

type LastPriceSubscription struct {
	Figi               string             `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	SubscriptionStatus SubscriptionStatus `protobuf:"varint,2,opt,name=subscription_status,json=subscriptionStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionStatus" json:"subscription_status,omitempty"`
	InstrumentUid      string             `protobuf:"bytes,3,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *LastPriceSubscription) Reset()         { *m = LastPriceSubscription{} }
func (m *LastPriceSubscription) String() string { return messageString(m) }
func (*LastPriceSubscription) ProtoMessage()    {}

// Candle is a streamed bar for a subscribed instrument.
type Candle struct {
	Figi          string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Interval      SubscriptionInterval   `protobuf:"varint,2,opt,name=interval,proto3,enum=tinkoff.public.invest.api.contract.v1.SubscriptionInterval" json:"interval,omitempty"`
	Open          *Quotation             `protobuf:"bytes,3,opt,name=open,proto3" json:"open,omitempty"`
	High          *Quotation             `protobuf:"bytes,4,opt,name=high,proto3" json:"high,omitempty"`
	Low           *Quotation             `protobuf:"bytes,5,opt,name=low,proto3" json:"low,omitempty"`
	Close         *Quotation             `protobuf:"bytes,6,opt,name=close,proto3" json:"close,omitempty"`
	Volume        int64                  `protobuf:"varint,7,opt,name=volume,proto3" json:"volume,omitempty"`
	Time          *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=time,proto3" json:"time,omitempty"`
	LastTradeTs   *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=last_trade_ts,json=lastTradeTs,proto3" json:"last_trade_ts,omitempty"`
	InstrumentUid string                 `protobuf:"bytes,10,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *Candle) Reset()         { *m = Candle{} }
func (m *Candle) String() string { return messageString(m) }
func (*Candle) ProtoMessage()    {}

func (m *Candle) GetClose() *Quotation {
	if m != nil {
		return m.Close
	}
	return nil
}

// OrderBook is a streamed depth snapshot.
type OrderBook struct {
	Figi          string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Depth         int32                  `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	IsConsistent  bool                   `protobuf:"varint,3,opt,name=is_consistent,json=isConsistent,proto3" json:"is_consistent,omitempty"`
	Bids          []*Order               `protobuf:"bytes,4,rep,name=bids,proto3" json:"bids,omitempty"`
	Asks          []*Order               `protobuf:"bytes,5,rep,name=asks,proto3" json:"asks,omitempty"`
	Time          *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=time,proto3" json:"time,omitempty"`
	LimitUp       *Quotation             `protobuf:"bytes,7,opt,name=limit_up,json=limitUp,proto3" json:"limit_up,omitempty"`
	LimitDown     *Quotation             `protobuf:"bytes,8,opt,name=limit_down,json=limitDown,proto3" json:"limit_down,omitempty"`
	InstrumentUid string                 `protobuf:"bytes,9,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *OrderBook) Reset()         { *m = OrderBook{} }
func (m *OrderBook) String() string { return messageString(m) }
func (*OrderBook) ProtoMessage()    {}

// TradingStatus is a streamed trading-status change.
type TradingStatus struct {
	Figi                     string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	TradingStatus            SecurityTradingStatus  `protobuf:"varint,2,opt,name=trading_status,json=tradingStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SecurityTradingStatus" json:"trading_status,omitempty"`
	Time                     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=time,proto3" json:"time,omitempty"`
	LimitOrderAvailableFlag  bool                   `protobuf:"varint,4,opt,name=limit_order_available_flag,json=limitOrderAvailableFlag,proto3" json:"limit_order_available_flag,omitempty"`
	MarketOrderAvailableFlag bool                   `protobuf:"varint,5,opt,name=market_order_available_flag,json=marketOrderAvailableFlag,proto3" json:"market_order_available_flag,omitempty"`
	InstrumentUid            string                 `protobuf:"bytes,6,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *TradingStatus) Reset()         { *m = TradingStatus{} }
func (m *TradingStatus) String() string { return messageString(m) }
func (*TradingStatus) ProtoMessage()    {}
