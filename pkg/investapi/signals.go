package investapi

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// StrategyType distinguishes technical and fundamental strategies.
type StrategyType int32

const (
	StrategyType_STRATEGY_TYPE_UNSPECIFIED StrategyType = 0
	StrategyType_STRATEGY_TYPE_TECHNICAL   StrategyType = 1
	StrategyType_STRATEGY_TYPE_FUNDAMENTAL StrategyType = 2
)

var strategyTypeName = map[int32]string{
	0: "STRATEGY_TYPE_UNSPECIFIED",
	1: "STRATEGY_TYPE_TECHNICAL",
	2: "STRATEGY_TYPE_FUNDAMENTAL",
}

func (x StrategyType) String() string { return enumName(strategyTypeName, int32(x)) }

// SignalDirection is the trade side a signal recommends.
type SignalDirection int32

const (
	SignalDirection_SIGNAL_DIRECTION_UNSPECIFIED SignalDirection = 0
	SignalDirection_SIGNAL_DIRECTION_BUY         SignalDirection = 1
	SignalDirection_SIGNAL_DIRECTION_SELL        SignalDirection = 2
)

var signalDirectionName = map[int32]string{
	0: "SIGNAL_DIRECTION_UNSPECIFIED",
	1: "SIGNAL_DIRECTION_BUY",
	2: "SIGNAL_DIRECTION_SELL",
}

func (x SignalDirection) String() string { return enumName(signalDirectionName, int32(x)) }

// SignalState filters active and closed signals.
type SignalState int32

const (
	SignalState_SIGNAL_STATE_UNSPECIFIED SignalState = 0
	SignalState_SIGNAL_STATE_ACTIVE      SignalState = 1
	SignalState_SIGNAL_STATE_CLOSED      SignalState = 2
	SignalState_SIGNAL_STATE_ALL         SignalState = 3
)

var signalStateName = map[int32]string{
	0: "SIGNAL_STATE_UNSPECIFIED",
	1: "SIGNAL_STATE_ACTIVE",
	2: "SIGNAL_STATE_CLOSED",
	3: "SIGNAL_STATE_ALL",
}

func (x SignalState) String() string { return enumName(signalStateName, int32(x)) }

type GetStrategiesRequest struct {
	StrategyId *string `protobuf:"bytes,1,opt,name=strategy_id,json=strategyId,proto3,oneof" json:"strategy_id,omitempty"`
}

func (m *GetStrategiesRequest) Reset()         { *m = GetStrategiesRequest{} }
func (m *GetStrategiesRequest) String() string { return messageString(m) }
func (*GetStrategiesRequest) ProtoMessage()    {}

func (m *GetStrategiesRequest) GetStrategyId() string {
	if m != nil && m.StrategyId != nil {
		return *m.StrategyId
	}
	return ""
}

type GetStrategiesResponse struct {
	Strategies []*Strategy `protobuf:"bytes,1,rep,name=strategies,proto3" json:"strategies,omitempty"`
}

func (m *GetStrategiesResponse) Reset()         { *m = GetStrategiesResponse{} }
func (m *GetStrategiesResponse) String() string { return messageString(m) }
func (*GetStrategiesResponse) ProtoMessage()    {}

func (m *GetStrategiesResponse) GetStrategies() []*Strategy {
	if m != nil {
		return m.Strategies
	}
	return nil
}

// Strategy is a published signal strategy.
type Strategy struct {
	StrategyId             string       `protobuf:"bytes,1,opt,name=strategy_id,json=strategyId,proto3" json:"strategy_id,omitempty"`
	StrategyName           string       `protobuf:"bytes,2,opt,name=strategy_name,json=strategyName,proto3" json:"strategy_name,omitempty"`
	StrategyDescription    *string      `protobuf:"bytes,3,opt,name=strategy_description,json=strategyDescription,proto3,oneof" json:"strategy_description,omitempty"`
	StrategyUrl            *string      `protobuf:"bytes,4,opt,name=strategy_url,json=strategyUrl,proto3,oneof" json:"strategy_url,omitempty"`
	StrategyType           StrategyType `protobuf:"varint,5,opt,name=strategy_type,json=strategyType,proto3,enum=tinkoff.public.invest.api.contract.v1.StrategyType" json:"strategy_type,omitempty"`
	ActiveSignals          int32        `protobuf:"varint,6,opt,name=active_signals,json=activeSignals,proto3" json:"active_signals,omitempty"`
	TotalSignals           int32        `protobuf:"varint,7,opt,name=total_signals,json=totalSignals,proto3" json:"total_signals,omitempty"`
	TimeInPosition         int64        `protobuf:"varint,8,opt,name=time_in_position,json=timeInPosition,proto3" json:"time_in_position,omitempty"`
	AverageSignalYield     *Quotation   `protobuf:"bytes,9,opt,name=average_signal_yield,json=averageSignalYield,proto3" json:"average_signal_yield,omitempty"`
	AverageSignalYieldYear *Quotation   `protobuf:"bytes,10,opt,name=average_signal_yield_year,json=averageSignalYieldYear,proto3" json:"average_signal_yield_year,omitempty"`
	Yield                  *Quotation   `protobuf:"bytes,11,opt,name=yield,proto3" json:"yield,omitempty"`
	YieldYear              *Quotation   `protobuf:"bytes,12,opt,name=yield_year,json=yieldYear,proto3" json:"yield_year,omitempty"`
}

func (m *Strategy) Reset()         { *m = Strategy{} }
func (m *Strategy) String() string { return messageString(m) }
func (*Strategy) ProtoMessage()    {}

func (m *Strategy) GetStrategyId() string {
	if m != nil {
		return m.StrategyId
	}
	return ""
}

type GetSignalsRequest struct {
	SignalId      *string                `protobuf:"bytes,1,opt,name=signal_id,json=signalId,proto3,oneof" json:"signal_id,omitempty"`
	StrategyId    *string                `protobuf:"bytes,2,opt,name=strategy_id,json=strategyId,proto3,oneof" json:"strategy_id,omitempty"`
	StrategyType  *StrategyType          `protobuf:"varint,3,opt,name=strategy_type,json=strategyType,proto3,enum=tinkoff.public.invest.api.contract.v1.StrategyType,oneof" json:"strategy_type,omitempty"`
	InstrumentUid *string                `protobuf:"bytes,4,opt,name=instrument_uid,json=instrumentUid,proto3,oneof" json:"instrument_uid,omitempty"`
	From          *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=from,proto3,oneof" json:"from,omitempty"`
	To            *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=to,proto3,oneof" json:"to,omitempty"`
	Direction     *SignalDirection       `protobuf:"varint,7,opt,name=direction,proto3,enum=tinkoff.public.invest.api.contract.v1.SignalDirection,oneof" json:"direction,omitempty"`
	Active        *SignalState           `protobuf:"varint,8,opt,name=active,proto3,enum=tinkoff.public.invest.api.contract.v1.SignalState,oneof" json:"active,omitempty"`
	Paging        *Page                  `protobuf:"bytes,9,opt,name=paging,proto3,oneof" json:"paging,omitempty"`
}

func (m *GetSignalsRequest) Reset()         { *m = GetSignalsRequest{} }
func (m *GetSignalsRequest) String() string { return messageString(m) }
func (*GetSignalsRequest) ProtoMessage()    {}

type GetSignalsResponse struct {
	Signals []*Signal     `protobuf:"bytes,1,rep,name=signals,proto3" json:"signals,omitempty"`
	Paging  *PageResponse `protobuf:"bytes,2,opt,name=paging,proto3" json:"paging,omitempty"`
}

func (m *GetSignalsResponse) Reset()         { *m = GetSignalsResponse{} }
func (m *GetSignalsResponse) String() string { return messageString(m) }
func (*GetSignalsResponse) ProtoMessage()    {}

func (m *GetSignalsResponse) GetSignals() []*Signal {
	if m != nil {
		return m.Signals
	}
	return nil
}

// Signal is a single recommendation published by a strategy.
type Signal struct {
	SignalId      string                 `protobuf:"bytes,1,opt,name=signal_id,json=signalId,proto3" json:"signal_id,omitempty"`
	StrategyId    string                 `protobuf:"bytes,2,opt,name=strategy_id,json=strategyId,proto3" json:"strategy_id,omitempty"`
	StrategyName  string                 `protobuf:"bytes,3,opt,name=strategy_name,json=strategyName,proto3" json:"strategy_name,omitempty"`
	InstrumentUid string                 `protobuf:"bytes,4,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
	CreateDt      *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=create_dt,json=createDt,proto3" json:"create_dt,omitempty"`
	Direction     SignalDirection        `protobuf:"varint,6,opt,name=direction,proto3,enum=tinkoff.public.invest.api.contract.v1.SignalDirection" json:"direction,omitempty"`
	InitialPrice  *Quotation             `protobuf:"bytes,7,opt,name=initial_price,json=initialPrice,proto3" json:"initial_price,omitempty"`
	Info          *string                `protobuf:"bytes,8,opt,name=info,proto3,oneof" json:"info,omitempty"`
	Name          string                 `protobuf:"bytes,9,opt,name=name,proto3" json:"name,omitempty"`
	TargetPrice   *Quotation             `protobuf:"bytes,10,opt,name=target_price,json=targetPrice,proto3" json:"target_price,omitempty"`
	EndDt         *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=end_dt,json=endDt,proto3" json:"end_dt,omitempty"`
	Probability   *int32                 `protobuf:"varint,12,opt,name=probability,proto3,oneof" json:"probability,omitempty"`
	Stoploss      *Quotation             `protobuf:"bytes,13,opt,name=stoploss,proto3" json:"stoploss,omitempty"`
	ClosePrice    *Quotation             `protobuf:"bytes,14,opt,name=close_price,json=closePrice,proto3" json:"close_price,omitempty"`
	CloseDt       *timestamppb.Timestamp `protobuf:"bytes,15,opt,name=close_dt,json=closeDt,proto3" json:"close_dt,omitempty"`
}

func (m *Signal) Reset()         { *m = Signal{} }
func (m *Signal) String() string { return messageString(m) }
func (*Signal) ProtoMessage()    {}

func (m *Signal) GetSignalId() string {
	if m != nil {
		return m.SignalId
	}
	return ""
}

// Page selects a slice of a paged listing.
type Page struct {
	PageSize   int32 `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageNumber int32 `protobuf:"varint,2,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
}

func (m *Page) Reset()         { *m = Page{} }
func (m *Page) String() string { return messageString(m) }
func (*Page) ProtoMessage()    {}

// PageResponse reports the slice actually returned.
type PageResponse struct {
	TotalCount int32 `protobuf:"varint,1,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	PageSize   int32 `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageNumber int32 `protobuf:"varint,3,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
}

func (m *PageResponse) Reset()         { *m = PageResponse{} }
func (m *PageResponse) String() string { return messageString(m) }
func (*PageResponse) ProtoMessage()    {}
