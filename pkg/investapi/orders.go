package investapi

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// OrderDirection is the trade side of an order.
type OrderDirection int32

const (
	OrderDirection_ORDER_DIRECTION_UNSPECIFIED OrderDirection = 0
	OrderDirection_ORDER_DIRECTION_BUY         OrderDirection = 1
	OrderDirection_ORDER_DIRECTION_SELL        OrderDirection = 2
)

var orderDirectionName = map[int32]string{
	0: "ORDER_DIRECTION_UNSPECIFIED",
	1: "ORDER_DIRECTION_BUY",
	2: "ORDER_DIRECTION_SELL",
}

func (x OrderDirection) String() string { return enumName(orderDirectionName, int32(x)) }

// OrderType selects limit, market or best-price execution.
type OrderType int32

const (
	OrderType_ORDER_TYPE_UNSPECIFIED OrderType = 0
	OrderType_ORDER_TYPE_LIMIT       OrderType = 1
	OrderType_ORDER_TYPE_MARKET      OrderType = 2
	OrderType_ORDER_TYPE_BESTPRICE   OrderType = 3
)

var orderTypeName = map[int32]string{
	0: "ORDER_TYPE_UNSPECIFIED",
	1: "ORDER_TYPE_LIMIT",
	2: "ORDER_TYPE_MARKET",
	3: "ORDER_TYPE_BESTPRICE",
}

func (x OrderType) String() string { return enumName(orderTypeName, int32(x)) }

// OrderExecutionReportStatus is the lifecycle state of a placed order.
type OrderExecutionReportStatus int32

const (
	OrderExecutionReportStatus_EXECUTION_REPORT_STATUS_UNSPECIFIED   OrderExecutionReportStatus = 0
	OrderExecutionReportStatus_EXECUTION_REPORT_STATUS_FILL          OrderExecutionReportStatus = 1
	OrderExecutionReportStatus_EXECUTION_REPORT_STATUS_REJECTED      OrderExecutionReportStatus = 2
	OrderExecutionReportStatus_EXECUTION_REPORT_STATUS_CANCELLED     OrderExecutionReportStatus = 3
	OrderExecutionReportStatus_EXECUTION_REPORT_STATUS_NEW           OrderExecutionReportStatus = 4
	OrderExecutionReportStatus_EXECUTION_REPORT_STATUS_PARTIALLYFILL OrderExecutionReportStatus = 5
)

var orderExecutionReportStatusName = map[int32]string{
	0: "EXECUTION_REPORT_STATUS_UNSPECIFIED",
	1: "EXECUTION_REPORT_STATUS_FILL",
	2: "EXECUTION_REPORT_STATUS_REJECTED",
	3: "EXECUTION_REPORT_STATUS_CANCELLED",
	4: "EXECUTION_REPORT_STATUS_NEW",
	5: "EXECUTION_REPORT_STATUS_PARTIALLYFILL",
}

func (x OrderExecutionReportStatus) String() string {
	return enumName(orderExecutionReportStatusName, int32(x))
}

// PriceType distinguishes point and currency prices for ReplaceOrder.
type PriceType int32

const (
	PriceType_PRICE_TYPE_UNSPECIFIED PriceType = 0
	PriceType_PRICE_TYPE_POINT       PriceType = 1
	PriceType_PRICE_TYPE_CURRENCY    PriceType = 2
)

var priceTypeName = map[int32]string{
	0: "PRICE_TYPE_UNSPECIFIED",
	1: "PRICE_TYPE_POINT",
	2: "PRICE_TYPE_CURRENCY",
}

func (x PriceType) String() string { return enumName(priceTypeName, int32(x)) }

type PostOrderRequest struct {
	// Deprecated: use InstrumentId.
	Figi         string         `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Quantity     int64          `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price        *Quotation     `protobuf:"bytes,3,opt,name=price,proto3" json:"price,omitempty"`
	Direction    OrderDirection `protobuf:"varint,4,opt,name=direction,proto3,enum=tinkoff.public.invest.api.contract.v1.OrderDirection" json:"direction,omitempty"`
	AccountId    string         `protobuf:"bytes,5,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	OrderType    OrderType      `protobuf:"varint,6,opt,name=order_type,json=orderType,proto3,enum=tinkoff.public.invest.api.contract.v1.OrderType" json:"order_type,omitempty"`
	OrderId      string         `protobuf:"bytes,7,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	InstrumentId string         `protobuf:"bytes,8,opt,name=instrument_id,json=instrumentId,proto3" json:"instrument_id,omitempty"`
}

func (m *PostOrderRequest) Reset()         { *m = PostOrderRequest{} }
func (m *PostOrderRequest) String() string { return messageString(m) }
func (*PostOrderRequest) ProtoMessage()    {}

func (m *PostOrderRequest) GetQuantity() int64 {
	if m != nil {
		return m.Quantity
	}
	return 0
}

func (m *PostOrderRequest) GetOrderId() string {
	if m != nil {
		return m.OrderId
	}
	return ""
}

type PostOrderResponse struct {
	OrderId               string                     `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	ExecutionReportStatus OrderExecutionReportStatus `protobuf:"varint,2,opt,name=execution_report_status,json=executionReportStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.OrderExecutionReportStatus" json:"execution_report_status,omitempty"`
	LotsRequested         int64                      `protobuf:"varint,3,opt,name=lots_requested,json=lotsRequested,proto3" json:"lots_requested,omitempty"`
	LotsExecuted          int64                      `protobuf:"varint,4,opt,name=lots_executed,json=lotsExecuted,proto3" json:"lots_executed,omitempty"`
	InitialOrderPrice     *MoneyValue                `protobuf:"bytes,5,opt,name=initial_order_price,json=initialOrderPrice,proto3" json:"initial_order_price,omitempty"`
	ExecutedOrderPrice    *MoneyValue                `protobuf:"bytes,6,opt,name=executed_order_price,json=executedOrderPrice,proto3" json:"executed_order_price,omitempty"`
	TotalOrderAmount      *MoneyValue                `protobuf:"bytes,7,opt,name=total_order_amount,json=totalOrderAmount,proto3" json:"total_order_amount,omitempty"`
	InitialCommission     *MoneyValue                `protobuf:"bytes,8,opt,name=initial_commission,json=initialCommission,proto3" json:"initial_commission,omitempty"`
	ExecutedCommission    *MoneyValue                `protobuf:"bytes,9,opt,name=executed_commission,json=executedCommission,proto3" json:"executed_commission,omitempty"`
	AciValue              *MoneyValue                `protobuf:"bytes,10,opt,name=aci_value,json=aciValue,proto3" json:"aci_value,omitempty"`
	Figi                  string                     `protobuf:"bytes,11,opt,name=figi,proto3" json:"figi,omitempty"`
	Direction             OrderDirection             `protobuf:"varint,12,opt,name=direction,proto3,enum=tinkoff.public.invest.api.contract.v1.OrderDirection" json:"direction,omitempty"`
	InitialSecurityPrice  *MoneyValue                `protobuf:"bytes,13,opt,name=initial_security_price,json=initialSecurityPrice,proto3" json:"initial_security_price,omitempty"`
	OrderType             OrderType                  `protobuf:"varint,14,opt,name=order_type,json=orderType,proto3,enum=tinkoff.public.invest.api.contract.v1.OrderType" json:"order_type,omitempty"`
	Message               string                     `protobuf:"bytes,15,opt,name=message,proto3" json:"message,omitempty"`
	InitialOrderPricePt   *Quotation                 `protobuf:"bytes,16,opt,name=initial_order_price_pt,json=initialOrderPricePt,proto3" json:"initial_order_price_pt,omitempty"`
	InstrumentUid         string                     `protobuf:"bytes,17,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *PostOrderResponse) Reset()         { *m = PostOrderResponse{} }
func (m *PostOrderResponse) String() string { return messageString(m) }
func (*PostOrderResponse) ProtoMessage()    {}

func (m *PostOrderResponse) GetOrderId() string {
	if m != nil {
		return m.OrderId
	}
	return ""
}

func (m *PostOrderResponse) GetExecutionReportStatus() OrderExecutionReportStatus {
	if m != nil {
		return m.ExecutionReportStatus
	}
	return OrderExecutionReportStatus_EXECUTION_REPORT_STATUS_UNSPECIFIED
}

func (m *PostOrderResponse) GetLotsExecuted() int64 {
	if m != nil {
		return m.LotsExecuted
	}
	return 0
}

func (m *PostOrderResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type CancelOrderRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	OrderId   string `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
}

func (m *CancelOrderRequest) Reset()         { *m = CancelOrderRequest{} }
func (m *CancelOrderRequest) String() string { return messageString(m) }
func (*CancelOrderRequest) ProtoMessage()    {}

type CancelOrderResponse struct {
	Time *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *CancelOrderResponse) Reset()         { *m = CancelOrderResponse{} }
func (m *CancelOrderResponse) String() string { return messageString(m) }
func (*CancelOrderResponse) ProtoMessage()    {}

func (m *CancelOrderResponse) GetTime() *timestamppb.Timestamp {
	if m != nil {
		return m.Time
	}
	return nil
}

type GetOrderStateRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	OrderId   string `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
}

func (m *GetOrderStateRequest) Reset()         { *m = GetOrderStateRequest{} }
func (m *GetOrderStateRequest) String() string { return messageString(m) }
func (*GetOrderStateRequest) ProtoMessage()    {}

type GetOrdersRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *GetOrdersRequest) Reset()         { *m = GetOrdersRequest{} }
func (m *GetOrdersRequest) String() string { return messageString(m) }
func (*GetOrdersRequest) ProtoMessage()    {}

type GetOrdersResponse struct {
	Orders []*OrderState `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
}

func (m *GetOrdersResponse) Reset()         { *m = GetOrdersResponse{} }
func (m *GetOrdersResponse) String() string { return messageString(m) }
func (*GetOrdersResponse) ProtoMessage()    {}

func (m *GetOrdersResponse) GetOrders() []*OrderState {
	if m != nil {
		return m.Orders
	}
	return nil
}

// OrderState is the full state of an active or historical order.
type OrderState struct {
	OrderId               string                     `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	ExecutionReportStatus OrderExecutionReportStatus `protobuf:"varint,2,opt,name=execution_report_status,json=executionReportStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.OrderExecutionReportStatus" json:"execution_report_status,omitempty"`
	LotsRequested         int64                      `protobuf:"varint,3,opt,name=lots_requested,json=lotsRequested,proto3" json:"lots_requested,omitempty"`
	LotsExecuted          int64                      `protobuf:"varint,4,opt,name=lots_executed,json=lotsExecuted,proto3" json:"lots_executed,omitempty"`
	InitialOrderPrice     *MoneyValue                `protobuf:"bytes,5,opt,name=initial_order_price,json=initialOrderPrice,proto3" json:"initial_order_price,omitempty"`
	ExecutedOrderPrice    *MoneyValue                `protobuf:"bytes,6,opt,name=executed_order_price,json=executedOrderPrice,proto3" json:"executed_order_price,omitempty"`
	TotalOrderAmount      *MoneyValue                `protobuf:"bytes,7,opt,name=total_order_amount,json=totalOrderAmount,proto3" json:"total_order_amount,omitempty"`
	AveragePositionPrice  *MoneyValue                `protobuf:"bytes,8,opt,name=average_position_price,json=averagePositionPrice,proto3" json:"average_position_price,omitempty"`
	InitialCommission     *MoneyValue                `protobuf:"bytes,9,opt,name=initial_commission,json=initialCommission,proto3" json:"initial_commission,omitempty"`
	ExecutedCommission    *MoneyValue                `protobuf:"bytes,10,opt,name=executed_commission,json=executedCommission,proto3" json:"executed_commission,omitempty"`
	Figi                  string                     `protobuf:"bytes,11,opt,name=figi,proto3" json:"figi,omitempty"`
	Direction             OrderDirection             `protobuf:"varint,12,opt,name=direction,proto3,enum=tinkoff.public.invest.api.contract.v1.OrderDirection" json:"direction,omitempty"`
	InitialSecurityPrice  *MoneyValue                `protobuf:"bytes,13,opt,name=initial_security_price,json=initialSecurityPrice,proto3" json:"initial_security_price,omitempty"`
	Stages                []*OrderStage              `protobuf:"bytes,14,rep,name=stages,proto3" json:"stages,omitempty"`
	ServiceCommission     *MoneyValue                `protobuf:"bytes,15,opt,name=service_commission,json=serviceCommission,proto3" json:"service_commission,omitempty"`
	Currency              string                     `protobuf:"bytes,16,opt,name=currency,proto3" json:"currency,omitempty"`
	OrderType             OrderType                  `protobuf:"varint,17,opt,name=order_type,json=orderType,proto3,enum=tinkoff.public.invest.api.contract.v1.OrderType" json:"order_type,omitempty"`
	OrderDate             *timestamppb.Timestamp     `protobuf:"bytes,18,opt,name=order_date,json=orderDate,proto3" json:"order_date,omitempty"`
	InstrumentUid         string                     `protobuf:"bytes,19,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
	OrderRequestId        string                     `protobuf:"bytes,20,opt,name=order_request_id,json=orderRequestId,proto3" json:"order_request_id,omitempty"`
}

func (m *OrderState) Reset()         { *m = OrderState{} }
func (m *OrderState) String() string { return messageString(m) }
func (*OrderState) ProtoMessage()    {}

func (m *OrderState) GetOrderId() string {
	if m != nil {
		return m.OrderId
	}
	return ""
}

func (m *OrderState) GetExecutionReportStatus() OrderExecutionReportStatus {
	if m != nil {
		return m.ExecutionReportStatus
	}
	return OrderExecutionReportStatus_EXECUTION_REPORT_STATUS_UNSPECIFIED
}

func (m *OrderState) GetStages() []*OrderStage {
	if m != nil {
		return m.Stages
	}
	return nil
}

// OrderStage is a partial execution of an order.
type OrderStage struct {
	Price    *MoneyValue `protobuf:"bytes,1,opt,name=price,proto3" json:"price,omitempty"`
	Quantity int64       `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	TradeId  string      `protobuf:"bytes,3,opt,name=trade_id,json=tradeId,proto3" json:"trade_id,omitempty"`
}

func (m *OrderStage) Reset()         { *m = OrderStage{} }
func (m *OrderStage) String() string { return messageString(m) }
func (*OrderStage) ProtoMessage()    {}

type ReplaceOrderRequest struct {
	AccountId      string     `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	OrderId        string     `protobuf:"bytes,6,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	IdempotencyKey string     `protobuf:"bytes,7,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	Quantity       int64      `protobuf:"varint,11,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price          *Quotation `protobuf:"bytes,12,opt,name=price,proto3" json:"price,omitempty"`
	PriceType      PriceType  `protobuf:"varint,13,opt,name=price_type,json=priceType,proto3,enum=tinkoff.public.invest.api.contract.v1.PriceType" json:"price_type,omitempty"`
}

func (m *ReplaceOrderRequest) Reset()         { *m = ReplaceOrderRequest{} }
func (m *ReplaceOrderRequest) String() string { return messageString(m) }
func (*ReplaceOrderRequest) ProtoMessage()    {}

// TradesStreamRequest subscribes the caller's accounts to order trade events.
type TradesStreamRequest struct {
	Accounts []string `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (m *TradesStreamRequest) Reset()         { *m = TradesStreamRequest{} }
func (m *TradesStreamRequest) String() string { return messageString(m) }
func (*TradesStreamRequest) ProtoMessage()    {}

// TradesStreamResponse is the server-to-client frame of the trades stream.
type TradesStreamResponse struct {
	// Types that are valid to be assigned to Payload:
	//	*TradesStreamResponse_OrderTrades
	//	*TradesStreamResponse_Ping
	Payload isTradesStreamResponse_Payload `protobuf_oneof:"payload"`
}

func (m *TradesStreamResponse) Reset()         { *m = TradesStreamResponse{} }
func (m *TradesStreamResponse) String() string { return messageString(m) }
func (*TradesStreamResponse) ProtoMessage()    {}

type isTradesStreamResponse_Payload interface {
	isTradesStreamResponse_Payload()
}

type TradesStreamResponse_OrderTrades struct {
	OrderTrades *OrderTrades `protobuf:"bytes,1,opt,name=order_trades,json=orderTrades,proto3,oneof"`
}

type TradesStreamResponse_Ping struct {
	Ping *Ping `protobuf:"bytes,2,opt,name=ping,proto3,oneof"`
}

func (*TradesStreamResponse_OrderTrades) isTradesStreamResponse_Payload() {}

func (*TradesStreamResponse_Ping) isTradesStreamResponse_Payload() {}

func (m *TradesStreamResponse) GetPayload() isTradesStreamResponse_Payload {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *TradesStreamResponse) GetOrderTrades() *OrderTrades {
	if x, ok := m.GetPayload().(*TradesStreamResponse_OrderTrades); ok {
		return x.OrderTrades
	}
	return nil
}

func (m *TradesStreamResponse) GetPing() *Ping {
	if x, ok := m.GetPayload().(*TradesStreamResponse_Ping); ok {
		return x.Ping
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*TradesStreamResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*TradesStreamResponse_OrderTrades)(nil),
		(*TradesStreamResponse_Ping)(nil),
	}
}

// OrderTrades groups the executions of one order.
type OrderTrades struct {
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Direction     OrderDirection         `protobuf:"varint,3,opt,name=direction,proto3,enum=tinkoff.public.invest.api.contract.v1.OrderDirection" json:"direction,omitempty"`
	Figi          string                 `protobuf:"bytes,4,opt,name=figi,proto3" json:"figi,omitempty"`
	Trades        []*OrderTrade          `protobuf:"bytes,5,rep,name=trades,proto3" json:"trades,omitempty"`
	AccountId     string                 `protobuf:"bytes,6,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	InstrumentUid string                 `protobuf:"bytes,7,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *OrderTrades) Reset()         { *m = OrderTrades{} }
func (m *OrderTrades) String() string { return messageString(m) }
func (*OrderTrades) ProtoMessage()    {}

func (m *OrderTrades) GetTrades() []*OrderTrade {
	if m != nil {
		return m.Trades
	}
	return nil
}

// OrderTrade is a single execution within an order.
type OrderTrade struct {
	DateTime *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=date_time,json=dateTime,proto3" json:"date_time,omitempty"`
	Price    *Quotation             `protobuf:"bytes,2,opt,name=price,proto3" json:"price,omitempty"`
	Quantity int64                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	TradeId  string                 `protobuf:"bytes,4,opt,name=trade_id,json=tradeId,proto3" json:"trade_id,omitempty"`
}

func (m *OrderTrade) Reset()         { *m = OrderTrade{} }
func (m *OrderTrade) String() string { return messageString(m) }
func (*OrderTrade) ProtoMessage()    {}
