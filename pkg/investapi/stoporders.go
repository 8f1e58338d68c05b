package investapi

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// StopOrderDirection is the trade side of a stop order.
type StopOrderDirection int32

const (
	StopOrderDirection_STOP_ORDER_DIRECTION_UNSPECIFIED StopOrderDirection = 0
	StopOrderDirection_STOP_ORDER_DIRECTION_BUY         StopOrderDirection = 1
	StopOrderDirection_STOP_ORDER_DIRECTION_SELL        StopOrderDirection = 2
)

var stopOrderDirectionName = map[int32]string{
	0: "STOP_ORDER_DIRECTION_UNSPECIFIED",
	1: "STOP_ORDER_DIRECTION_BUY",
	2: "STOP_ORDER_DIRECTION_SELL",
}

func (x StopOrderDirection) String() string { return enumName(stopOrderDirectionName, int32(x)) }

// StopOrderExpirationType controls how long a stop order stays active.
type StopOrderExpirationType int32

const (
	StopOrderExpirationType_STOP_ORDER_EXPIRATION_TYPE_UNSPECIFIED      StopOrderExpirationType = 0
	StopOrderExpirationType_STOP_ORDER_EXPIRATION_TYPE_GOOD_TILL_CANCEL StopOrderExpirationType = 1
	StopOrderExpirationType_STOP_ORDER_EXPIRATION_TYPE_GOOD_TILL_DATE   StopOrderExpirationType = 2
)

var stopOrderExpirationTypeName = map[int32]string{
	0: "STOP_ORDER_EXPIRATION_TYPE_UNSPECIFIED",
	1: "STOP_ORDER_EXPIRATION_TYPE_GOOD_TILL_CANCEL",
	2: "STOP_ORDER_EXPIRATION_TYPE_GOOD_TILL_DATE",
}

func (x StopOrderExpirationType) String() string {
	return enumName(stopOrderExpirationTypeName, int32(x))
}

// StopOrderType selects take-profit, stop-loss or stop-limit behavior.
type StopOrderType int32

const (
	StopOrderType_STOP_ORDER_TYPE_UNSPECIFIED StopOrderType = 0
	StopOrderType_STOP_ORDER_TYPE_TAKE_PROFIT StopOrderType = 1
	StopOrderType_STOP_ORDER_TYPE_STOP_LOSS   StopOrderType = 2
	StopOrderType_STOP_ORDER_TYPE_STOP_LIMIT  StopOrderType = 3
)

var stopOrderTypeName = map[int32]string{
	0: "STOP_ORDER_TYPE_UNSPECIFIED",
	1: "STOP_ORDER_TYPE_TAKE_PROFIT",
	2: "STOP_ORDER_TYPE_STOP_LOSS",
	3: "STOP_ORDER_TYPE_STOP_LIMIT",
}

func (x StopOrderType) String() string { return enumName(stopOrderTypeName, int32(x)) }

type PostStopOrderRequest struct {
	// Deprecated: use InstrumentId.
	Figi           string                  `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Quantity       int64                   `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price          *Quotation              `protobuf:"bytes,3,opt,name=price,proto3" json:"price,omitempty"`
	StopPrice      *Quotation              `protobuf:"bytes,4,opt,name=stop_price,json=stopPrice,proto3" json:"stop_price,omitempty"`
	Direction      StopOrderDirection      `protobuf:"varint,5,opt,name=direction,proto3,enum=tinkoff.public.invest.api.contract.v1.StopOrderDirection" json:"direction,omitempty"`
	AccountId      string                  `protobuf:"bytes,6,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	ExpirationType StopOrderExpirationType `protobuf:"varint,7,opt,name=expiration_type,json=expirationType,proto3,enum=tinkoff.public.invest.api.contract.v1.StopOrderExpirationType" json:"expiration_type,omitempty"`
	StopOrderType  StopOrderType           `protobuf:"varint,8,opt,name=stop_order_type,json=stopOrderType,proto3,enum=tinkoff.public.invest.api.contract.v1.StopOrderType" json:"stop_order_type,omitempty"`
	ExpireDate     *timestamppb.Timestamp  `protobuf:"bytes,9,opt,name=expire_date,json=expireDate,proto3" json:"expire_date,omitempty"`
	InstrumentId   string                  `protobuf:"bytes,10,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *PostStopOrderRequest) Reset()         { *m = PostStopOrderRequest{} }
func (m *PostStopOrderRequest) String() string { return messageString(m) }
func (*PostStopOrderRequest) ProtoMessage()    {}

type PostStopOrderResponse struct {
	StopOrderId string `protobuf:"bytes,1,opt,name=stop_order_id,json=stopOrderId,proto3" json:"stop_order_id,omitempty"`
}

func (m *PostStopOrderResponse) Reset()         { *m = PostStopOrderResponse{} }
func (m *PostStopOrderResponse) String() string { return messageString(m) }
func (*PostStopOrderResponse) ProtoMessage()    {}

func (m *PostStopOrderResponse) GetStopOrderId() string {
	if m != nil {
		return m.StopOrderId
	}
	return ""
}

type GetStopOrdersRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *GetStopOrdersRequest) Reset()         { *m = GetStopOrdersRequest{} }
func (m *GetStopOrdersRequest) String() string { return messageString(m) }
func (*GetStopOrdersRequest) ProtoMessage()    {}

type GetStopOrdersResponse struct {
	StopOrders []*StopOrder `protobuf:"bytes,1,rep,name=stop_orders,json=stopOrders,proto3" json:"stop_orders,omitempty"`
}

func (m *GetStopOrdersResponse) Reset()         { *m = GetStopOrdersResponse{} }
func (m *GetStopOrdersResponse) String() string { return messageString(m) }
func (*GetStopOrdersResponse) ProtoMessage()    {}

func (m *GetStopOrdersResponse) GetStopOrders() []*StopOrder {
	if m != nil {
		return m.StopOrders
	}
	return nil
}

// StopOrder is an active stop order of an account.
type StopOrder struct {
	StopOrderId        string                 `protobuf:"bytes,1,opt,name=stop_order_id,json=stopOrderId,proto3" json:"stop_order_id,omitempty"`
	LotsRequested      int64                  `protobuf:"varint,2,opt,name=lots_requested,json=lotsRequested,proto3" json:"lots_requested,omitempty"`
	Figi               string                 `protobuf:"bytes,3,opt,name=figi,proto3" json:"figi,omitempty"`
	Direction          StopOrderDirection     `protobuf:"varint,4,opt,name=direction,proto3,enum=tinkoff.public.invest.api.contract.v1.StopOrderDirection" json:"direction,omitempty"`
	Currency           string                 `protobuf:"bytes,5,opt,name=currency,proto3" json:"currency,omitempty"`
	OrderType          StopOrderType          `protobuf:"varint,6,opt,name=order_type,json=orderType,proto3,enum=tinkoff.public.invest.api.contract.v1.StopOrderType" json:"order_type,omitempty"`
	CreateDate         *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=create_date,json=createDate,proto3" json:"create_date,omitempty"`
	ActivationDateTime *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=activation_date_time,json=activationDateTime,proto3" json:"activation_date_time,omitempty"`
	ExpirationTime     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=expiration_time,json=expirationTime,proto3" json:"expiration_time,omitempty"`
	Price              *MoneyValue            `protobuf:"bytes,10,opt,name=price,proto3" json:"price,omitempty"`
	StopPrice          *MoneyValue            `protobuf:"bytes,11,opt,name=stop_price,json=stopPrice,proto3" json:"stop_price,omitempty"`
	InstrumentUid      string                 `protobuf:"bytes,12,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *StopOrder) Reset()         { *m = StopOrder{} }
func (m *StopOrder) String() string { return messageString(m) }
func (*StopOrder) ProtoMessage()    {}

func (m *StopOrder) GetStopOrderId() string {
	if m != nil {
		return m.StopOrderId
	}
	return ""
}

type CancelStopOrderRequest struct {
	AccountId   string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	StopOrderId string `protobuf:"bytes,2,opt,name=stop_order_id,json=stopOrderId,proto3" json:"stop_order_id,omitempty"`
}

func (m *CancelStopOrderRequest) Reset()         { *m = CancelStopOrderRequest{} }
func (m *CancelStopOrderRequest) String() string { return messageString(m) }
func (*CancelStopOrderRequest) ProtoMessage()    {}

type CancelStopOrderResponse struct {
	Time *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *CancelStopOrderResponse) Reset()         { *m = CancelStopOrderResponse{} }
func (m *CancelStopOrderResponse) String() string { return messageString(m) }
func (*CancelStopOrderResponse) ProtoMessage()    {}

func (m *CancelStopOrderResponse) GetTime() *timestamppb.Timestamp {
	if m != nil {
		return m.Time
	}
	return nil
}
