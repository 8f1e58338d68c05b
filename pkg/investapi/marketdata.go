package investapi

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// CandleInterval is the bar period for historic candle requests.
type CandleInterval int32

const (
	CandleInterval_CANDLE_INTERVAL_UNSPECIFIED CandleInterval = 0
	CandleInterval_CANDLE_INTERVAL_1_MIN       CandleInterval = 1
	CandleInterval_CANDLE_INTERVAL_5_MIN       CandleInterval = 2
	CandleInterval_CANDLE_INTERVAL_15_MIN      CandleInterval = 3
	CandleInterval_CANDLE_INTERVAL_HOUR        CandleInterval = 4
	CandleInterval_CANDLE_INTERVAL_DAY         CandleInterval = 5
	CandleInterval_CANDLE_INTERVAL_2_MIN       CandleInterval = 6
	CandleInterval_CANDLE_INTERVAL_3_MIN       CandleInterval = 7
	CandleInterval_CANDLE_INTERVAL_10_MIN      CandleInterval = 8
	CandleInterval_CANDLE_INTERVAL_30_MIN      CandleInterval = 9
	CandleInterval_CANDLE_INTERVAL_2_HOUR      CandleInterval = 10
	CandleInterval_CANDLE_INTERVAL_4_HOUR      CandleInterval = 11
	CandleInterval_CANDLE_INTERVAL_WEEK        CandleInterval = 12
	CandleInterval_CANDLE_INTERVAL_MONTH       CandleInterval = 13
)

var candleIntervalName = map[int32]string{
	0:  "CANDLE_INTERVAL_UNSPECIFIED",
	1:  "CANDLE_INTERVAL_1_MIN",
	2:  "CANDLE_INTERVAL_5_MIN",
	3:  "CANDLE_INTERVAL_15_MIN",
	4:  "CANDLE_INTERVAL_HOUR",
	5:  "CANDLE_INTERVAL_DAY",
	6:  "CANDLE_INTERVAL_2_MIN",
	7:  "CANDLE_INTERVAL_3_MIN",
	8:  "CANDLE_INTERVAL_10_MIN",
	9:  "CANDLE_INTERVAL_30_MIN",
	10: "CANDLE_INTERVAL_2_HOUR",
	11: "CANDLE_INTERVAL_4_HOUR",
	12: "CANDLE_INTERVAL_WEEK",
	13: "CANDLE_INTERVAL_MONTH",
}

func (x CandleInterval) String() string { return enumName(candleIntervalName, int32(x)) }

// TradeDirection is the aggressor side of an anonymized trade.
type TradeDirection int32

const (
	TradeDirection_TRADE_DIRECTION_UNSPECIFIED TradeDirection = 0
	TradeDirection_TRADE_DIRECTION_BUY         TradeDirection = 1
	TradeDirection_TRADE_DIRECTION_SELL        TradeDirection = 2
)

var tradeDirectionName = map[int32]string{
	0: "TRADE_DIRECTION_UNSPECIFIED",
	1: "TRADE_DIRECTION_BUY",
	2: "TRADE_DIRECTION_SELL",
}

func (x TradeDirection) String() string { return enumName(tradeDirectionName, int32(x)) }

type GetCandlesRequest struct {
	Figi         string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	From         *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To           *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Interval     CandleInterval         `protobuf:"varint,4,opt,name=interval,proto3,enum=tinkoff.public.invest.api.contract.v1.CandleInterval" json:"interval,omitempty"`
	InstrumentId string                 `protobuf:"bytes,5,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *GetCandlesRequest) Reset()         { *m = GetCandlesRequest{} }
func (m *GetCandlesRequest) String() string { return messageString(m) }
func (*GetCandlesRequest) ProtoMessage()    {}

type GetCandlesResponse struct {
	Candles []*HistoricCandle `protobuf:"bytes,1,rep,name=candles,proto3" json:"candles,omitempty"`
}

func (m *GetCandlesResponse) Reset()         { *m = GetCandlesResponse{} }
func (m *GetCandlesResponse) String() string { return messageString(m) }
func (*GetCandlesResponse) ProtoMessage()    {}

func (m *GetCandlesResponse) GetCandles() []*HistoricCandle {
	if m != nil {
		return m.Candles
	}
	return nil
}

// HistoricCandle is one OHLCV bar.
type HistoricCandle struct {
	Open       *Quotation             `protobuf:"bytes,1,opt,name=open,proto3" json:"open,omitempty"`
	High       *Quotation             `protobuf:"bytes,2,opt,name=high,proto3" json:"high,omitempty"`
	Low        *Quotation             `protobuf:"bytes,3,opt,name=low,proto3" json:"low,omitempty"`
	Close      *Quotation             `protobuf:"bytes,4,opt,name=close,proto3" json:"close,omitempty"`
	Volume     int64                  `protobuf:"varint,5,opt,name=volume,proto3" json:"volume,omitempty"`
	Time       *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=time,proto3" json:"time,omitempty"`
	IsComplete bool                   `protobuf:"varint,7,opt,name=is_complete,json=isComplete,proto3" json:"is_complete,omitempty"`
}

func (m *HistoricCandle) Reset()         { *m = HistoricCandle{} }
func (m *HistoricCandle) String() string { return messageString(m) }
func (*HistoricCandle) ProtoMessage()    {}

func (m *HistoricCandle) GetClose() *Quotation {
	if m != nil {
		return m.Close
	}
	return nil
}

type GetLastPricesRequest struct {
	Figi         []string `protobuf:"bytes,1,rep,name=figi,proto3" json:"figi,omitempty"`
	InstrumentId []string `protobuf:"bytes,2,rep,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *GetLastPricesRequest) Reset()         { *m = GetLastPricesRequest{} }
func (m *GetLastPricesRequest) String() string { return messageString(m) }
func (*GetLastPricesRequest) ProtoMessage()    {}

type GetLastPricesResponse struct {
	LastPrices []*LastPrice `protobuf:"bytes,1,rep,name=last_prices,json=lastPrices,proto3" json:"last_prices,omitempty"`
}

func (m *GetLastPricesResponse) Reset()         { *m = GetLastPricesResponse{} }
func (m *GetLastPricesResponse) String() string { return messageString(m) }
func (*GetLastPricesResponse) ProtoMessage()    {}

func (m *GetLastPricesResponse) GetLastPrices() []*LastPrice {
	if m != nil {
		return m.LastPrices
	}
	return nil
}

type LastPrice struct {
	Figi          string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Price         *Quotation             `protobuf:"bytes,2,opt,name=price,proto3" json:"price,omitempty"`
	Time          *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=time,proto3" json:"time,omitempty"`
	InstrumentUid string                 `protobuf:"bytes,11,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *LastPrice) Reset()         { *m = LastPrice{} }
func (m *LastPrice) String() string { return messageString(m) }
func (*LastPrice) ProtoMessage()    {}

func (m *LastPrice) GetPrice() *Quotation {
	if m != nil {
		return m.Price
	}
	return nil
}

type GetOrderBookRequest struct {
	Figi         string `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Depth        int32  `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	InstrumentId string `protobuf:"bytes,3,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *GetOrderBookRequest) Reset()         { *m = GetOrderBookRequest{} }
func (m *GetOrderBookRequest) String() string { return messageString(m) }
func (*GetOrderBookRequest) ProtoMessage()    {}

type GetOrderBookResponse struct {
	Figi          string     `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Depth         int32      `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	Bids          []*Order   `protobuf:"bytes,3,rep,name=bids,proto3" json:"bids,omitempty"`
	Asks          []*Order   `protobuf:"bytes,4,rep,name=asks,proto3" json:"asks,omitempty"`
	LastPrice     *Quotation `protobuf:"bytes,5,opt,name=last_price,json=lastPrice,proto3" json:"last_price,omitempty"`
	ClosePrice    *Quotation `protobuf:"bytes,6,opt,name=close_price,json=closePrice,proto3" json:"close_price,omitempty"`
	LimitUp       *Quotation `protobuf:"bytes,7,opt,name=limit_up,json=limitUp,proto3" json:"limit_up,omitempty"`
	LimitDown     *Quotation `protobuf:"bytes,8,opt,name=limit_down,json=limitDown,proto3" json:"limit_down,omitempty"`
	InstrumentUid string     `protobuf:"bytes,9,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *GetOrderBookResponse) Reset()         { *m = GetOrderBookResponse{} }
func (m *GetOrderBookResponse) String() string { return messageString(m) }
func (*GetOrderBookResponse) ProtoMessage()    {}

// Order is one price level of an order book.
type Order struct {
	Price    *Quotation `protobuf:"bytes,1,opt,name=price,proto3" json:"price,omitempty"`
	Quantity int64      `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *Order) Reset()         { *m = Order{} }
func (m *Order) String() string { return messageString(m) }
func (*Order) ProtoMessage()    {}

type GetTradingStatusRequest struct {
	Figi         string `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	InstrumentId string `protobuf:"bytes,2,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *GetTradingStatusRequest) Reset()         { *m = GetTradingStatusRequest{} }
func (m *GetTradingStatusRequest) String() string { return messageString(m) }
func (*GetTradingStatusRequest) ProtoMessage()    {}

type GetTradingStatusResponse struct {
	Figi                     string                `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	TradingStatus            SecurityTradingStatus `protobuf:"varint,2,opt,name=trading_status,json=tradingStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SecurityTradingStatus" json:"trading_status,omitempty"`
	LimitOrderAvailableFlag  bool                  `protobuf:"varint,3,opt,name=limit_order_available_flag,json=limitOrderAvailableFlag,proto3" json:"limit_order_available_flag,omitempty"`
	MarketOrderAvailableFlag bool                  `protobuf:"varint,4,opt,name=market_order_available_flag,json=marketOrderAvailableFlag,proto3" json:"market_order_available_flag,omitempty"`
	ApiTradeAvailableFlag    bool                  `protobuf:"varint,5,opt,name=api_trade_available_flag,json=apiTradeAvailableFlag,proto3" json:"api_trade_available_flag,omitempty"`
	InstrumentUid            string                `protobuf:"bytes,6,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *GetTradingStatusResponse) Reset()         { *m = GetTradingStatusResponse{} }
func (m *GetTradingStatusResponse) String() string { return messageString(m) }
func (*GetTradingStatusResponse) ProtoMessage()    {}

type GetLastTradesRequest struct {
	Figi         string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	From         *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To           *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	InstrumentId string                 `protobuf:"bytes,4,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *GetLastTradesRequest) Reset()         { *m = GetLastTradesRequest{} }
func (m *GetLastTradesRequest) String() string { return messageString(m) }
func (*GetLastTradesRequest) ProtoMessage()    {}

type GetLastTradesResponse struct {
	Trades []*Trade `protobuf:"bytes,1,rep,name=trades,proto3" json:"trades,omitempty"`
}

func (m *GetLastTradesResponse) Reset()         { *m = GetLastTradesResponse{} }
func (m *GetLastTradesResponse) String() string { return messageString(m) }
func (*GetLastTradesResponse) ProtoMessage()    {}

func (m *GetLastTradesResponse) GetTrades() []*Trade {
	if m != nil {
		return m.Trades
	}
	return nil
}

// Trade is one anonymized exchange trade.
type Trade struct {
	Figi          string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Direction     TradeDirection         `protobuf:"varint,2,opt,name=direction,proto3,enum=tinkoff.public.invest.api.contract.v1.TradeDirection" json:"direction,omitempty"`
	Price         *Quotation             `protobuf:"bytes,3,opt,name=price,proto3" json:"price,omitempty"`
	Quantity      int64                  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Time          *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=time,proto3" json:"time,omitempty"`
	InstrumentUid string                 `protobuf:"bytes,6,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *Trade) Reset()         { *m = Trade{} }
func (m *Trade) String() string { return messageString(m) }
func (*Trade) ProtoMessage()    {}

type GetClosePricesRequest struct {
	Instruments []*InstrumentClosePriceRequest `protobuf:"bytes,1,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *GetClosePricesRequest) Reset()         { *m = GetClosePricesRequest{} }
func (m *GetClosePricesRequest) String() string { return messageString(m) }
func (*GetClosePricesRequest) ProtoMessage()    {}

type InstrumentClosePriceRequest struct {
	InstrumentId string `protobuf:"bytes,1,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *InstrumentClosePriceRequest) Reset()         { *m = InstrumentClosePriceRequest{} }
func (m *InstrumentClosePriceRequest) String() string { return messageString(m) }
func (*InstrumentClosePriceRequest) ProtoMessage()    {}

type GetClosePricesResponse struct {
	ClosePrices []*InstrumentClosePriceResponse `protobuf:"bytes,1,rep,name=close_prices,json=closePrices,proto3" json:"close_prices,omitempty"`
}

func (m *GetClosePricesResponse) Reset()         { *m = GetClosePricesResponse{} }
func (m *GetClosePricesResponse) String() string { return messageString(m) }
func (*GetClosePricesResponse) ProtoMessage()    {}

func (m *GetClosePricesResponse) GetClosePrices() []*InstrumentClosePriceResponse {
	if m != nil {
		return m.ClosePrices
	}
	return nil
}

type InstrumentClosePriceResponse struct {
	Figi          string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	InstrumentUid string                 `protobuf:"bytes,2,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
	Price         *Quotation             `protobuf:"bytes,11,opt,name=price,proto3" json:"price,omitempty"`
	Time          *timestamppb.Timestamp `protobuf:"bytes,21,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *InstrumentClosePriceResponse) Reset()         { *m = InstrumentClosePriceResponse{} }
func (m *InstrumentClosePriceResponse) String() string { return messageString(m) }
func (*InstrumentClosePriceResponse) ProtoMessage()    {}
