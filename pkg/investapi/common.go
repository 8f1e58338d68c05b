package investapi

import (
	"strconv"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// messageString renders a legacy-form message through the v2 runtime so
// String() output matches what generated code produces.
func messageString(m protoadapt.MessageV1) string {
	return prototext.MarshalOptions{Multiline: false}.Format(protoadapt.MessageV2Of(m))
}

func enumName(names map[int32]string, v int32) string {
	if s, ok := names[v]; ok {
		return s
	}
	return strconv.Itoa(int(v))
}

// Quotation is a decimal value split into an integer and a fractional
// part. units and nano always carry the same sign.
type Quotation struct {
	Units int64 `protobuf:"varint,1,opt,name=units,proto3" json:"units,omitempty"`
	Nano  int32 `protobuf:"varint,2,opt,name=nano,proto3" json:"nano,omitempty"`
}

func (m *Quotation) Reset()         { *m = Quotation{} }
func (m *Quotation) String() string { return messageString(m) }
func (*Quotation) ProtoMessage()    {}

func (m *Quotation) GetUnits() int64 {
	if m != nil {
		return m.Units
	}
	return 0
}

func (m *Quotation) GetNano() int32 {
	if m != nil {
		return m.Nano
	}
	return 0
}

// MoneyValue is a monetary amount: ISO currency code plus a Quotation-style
// units/nano pair.
type MoneyValue struct {
	Currency string `protobuf:"bytes,1,opt,name=currency,proto3" json:"currency,omitempty"`
	Units    int64  `protobuf:"varint,2,opt,name=units,proto3" json:"units,omitempty"`
	Nano     int32  `protobuf:"varint,3,opt,name=nano,proto3" json:"nano,omitempty"`
}

func (m *MoneyValue) Reset()         { *m = MoneyValue{} }
func (m *MoneyValue) String() string { return messageString(m) }
func (*MoneyValue) ProtoMessage()    {}

func (m *MoneyValue) GetCurrency() string {
	if m != nil {
		return m.Currency
	}
	return ""
}

func (m *MoneyValue) GetUnits() int64 {
	if m != nil {
		return m.Units
	}
	return 0
}

func (m *MoneyValue) GetNano() int32 {
	if m != nil {
		return m.Nano
	}
	return 0
}

// Ping is the keepalive message the streaming services interleave with
// data responses.
type Ping struct {
	Time *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *Ping) Reset()         { *m = Ping{} }
func (m *Ping) String() string { return messageString(m) }
func (*Ping) ProtoMessage()    {}

func (m *Ping) GetTime() *timestamppb.Timestamp {
	if m != nil {
		return m.Time
	}
	return nil
}

// SecurityTradingStatus is the trading availability state of an instrument.
type SecurityTradingStatus int32

const (
	SecurityTradingStatus_SECURITY_TRADING_STATUS_UNSPECIFIED                      SecurityTradingStatus = 0
	SecurityTradingStatus_SECURITY_TRADING_STATUS_NOT_AVAILABLE_FOR_TRADING        SecurityTradingStatus = 1
	SecurityTradingStatus_SECURITY_TRADING_STATUS_OPENING_PERIOD                   SecurityTradingStatus = 2
	SecurityTradingStatus_SECURITY_TRADING_STATUS_CLOSING_PERIOD                   SecurityTradingStatus = 3
	SecurityTradingStatus_SECURITY_TRADING_STATUS_BREAK_IN_TRADING                 SecurityTradingStatus = 4
	SecurityTradingStatus_SECURITY_TRADING_STATUS_NORMAL_TRADING                   SecurityTradingStatus = 5
	SecurityTradingStatus_SECURITY_TRADING_STATUS_CLOSING_AUCTION                  SecurityTradingStatus = 6
	SecurityTradingStatus_SECURITY_TRADING_STATUS_DARK_POOL_AUCTION                SecurityTradingStatus = 7
	SecurityTradingStatus_SECURITY_TRADING_STATUS_DISCRETE_AUCTION                 SecurityTradingStatus = 8
	SecurityTradingStatus_SECURITY_TRADING_STATUS_OPENING_AUCTION_PERIOD           SecurityTradingStatus = 9
	SecurityTradingStatus_SECURITY_TRADING_STATUS_TRADING_AT_CLOSING_AUCTION_PRICE SecurityTradingStatus = 10
	SecurityTradingStatus_SECURITY_TRADING_STATUS_SESSION_ASSIGNED                 SecurityTradingStatus = 11
	SecurityTradingStatus_SECURITY_TRADING_STATUS_SESSION_CLOSE                    SecurityTradingStatus = 12
	SecurityTradingStatus_SECURITY_TRADING_STATUS_SESSION_OPEN                     SecurityTradingStatus = 13
	SecurityTradingStatus_SECURITY_TRADING_STATUS_DEALER_NORMAL_TRADING            SecurityTradingStatus = 14
	SecurityTradingStatus_SECURITY_TRADING_STATUS_DEALER_BREAK_IN_TRADING          SecurityTradingStatus = 15
	SecurityTradingStatus_SECURITY_TRADING_STATUS_DEALER_NOT_AVAILABLE_FOR_TRADING SecurityTradingStatus = 16
)

var securityTradingStatusName = map[int32]string{
	0:  "SECURITY_TRADING_STATUS_UNSPECIFIED",
	1:  "SECURITY_TRADING_STATUS_NOT_AVAILABLE_FOR_TRADING",
	2:  "SECURITY_TRADING_STATUS_OPENING_PERIOD",
	3:  "SECURITY_TRADING_STATUS_CLOSING_PERIOD",
	4:  "SECURITY_TRADING_STATUS_BREAK_IN_TRADING",
	5:  "SECURITY_TRADING_STATUS_NORMAL_TRADING",
	6:  "SECURITY_TRADING_STATUS_CLOSING_AUCTION",
	7:  "SECURITY_TRADING_STATUS_DARK_POOL_AUCTION",
	8:  "SECURITY_TRADING_STATUS_DISCRETE_AUCTION",
	9:  "SECURITY_TRADING_STATUS_OPENING_AUCTION_PERIOD",
	10: "SECURITY_TRADING_STATUS_TRADING_AT_CLOSING_AUCTION_PRICE",
	11: "SECURITY_TRADING_STATUS_SESSION_ASSIGNED",
	12: "SECURITY_TRADING_STATUS_SESSION_CLOSE",
	13: "SECURITY_TRADING_STATUS_SESSION_OPEN",
	14: "SECURITY_TRADING_STATUS_DEALER_NORMAL_TRADING",
	15: "SECURITY_TRADING_STATUS_DEALER_BREAK_IN_TRADING",
	16: "SECURITY_TRADING_STATUS_DEALER_NOT_AVAILABLE_FOR_TRADING",
}

func (x SecurityTradingStatus) String() string {
	return enumName(securityTradingStatusName, int32(x))
}

// InstrumentType is the instrument kind used by search and signal queries.
type InstrumentType int32

const (
	InstrumentType_INSTRUMENT_TYPE_UNSPECIFIED           InstrumentType = 0
	InstrumentType_INSTRUMENT_TYPE_BOND                  InstrumentType = 1
	InstrumentType_INSTRUMENT_TYPE_SHARE                 InstrumentType = 2
	InstrumentType_INSTRUMENT_TYPE_CURRENCY              InstrumentType = 3
	InstrumentType_INSTRUMENT_TYPE_ETF                   InstrumentType = 4
	InstrumentType_INSTRUMENT_TYPE_FUTURES               InstrumentType = 5
	InstrumentType_INSTRUMENT_TYPE_SP                   InstrumentType = 6
	InstrumentType_INSTRUMENT_TYPE_OPTION               InstrumentType = 7
	InstrumentType_INSTRUMENT_TYPE_CLEARING_CERTIFICATE InstrumentType = 8
)

var instrumentTypeName = map[int32]string{
	0: "INSTRUMENT_TYPE_UNSPECIFIED",
	1: "INSTRUMENT_TYPE_BOND",
	2: "INSTRUMENT_TYPE_SHARE",
	3: "INSTRUMENT_TYPE_CURRENCY",
	4: "INSTRUMENT_TYPE_ETF",
	5: "INSTRUMENT_TYPE_FUTURES",
	6: "INSTRUMENT_TYPE_SP",
	7: "INSTRUMENT_TYPE_OPTION",
	8: "INSTRUMENT_TYPE_CLEARING_CERTIFICATE",
}

func (x InstrumentType) String() string {
	return enumName(instrumentTypeName, int32(x))
}
