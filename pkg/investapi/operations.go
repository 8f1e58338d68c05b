package investapi

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// OperationState is the settlement state of an operation.
type OperationState int32

const (
	OperationState_OPERATION_STATE_UNSPECIFIED OperationState = 0
	OperationState_OPERATION_STATE_EXECUTED    OperationState = 1
	OperationState_OPERATION_STATE_CANCELED    OperationState = 2
	OperationState_OPERATION_STATE_PROGRESS    OperationState = 3
)

var operationStateName = map[int32]string{
	0: "OPERATION_STATE_UNSPECIFIED",
	1: "OPERATION_STATE_EXECUTED",
	2: "OPERATION_STATE_CANCELED",
	3: "OPERATION_STATE_PROGRESS",
}

func (x OperationState) String() string { return enumName(operationStateName, int32(x)) }

// OperationType classifies ledger operations.
type OperationType int32

const (
	OperationType_OPERATION_TYPE_UNSPECIFIED         OperationType = 0
	OperationType_OPERATION_TYPE_INPUT               OperationType = 1
	OperationType_OPERATION_TYPE_BOND_TAX            OperationType = 2
	OperationType_OPERATION_TYPE_OUTPUT_SECURITIES   OperationType = 3
	OperationType_OPERATION_TYPE_OVERNIGHT           OperationType = 4
	OperationType_OPERATION_TYPE_TAX                 OperationType = 5
	OperationType_OPERATION_TYPE_BOND_REPAYMENT_FULL OperationType = 6
	OperationType_OPERATION_TYPE_SELL_CARD           OperationType = 7
	OperationType_OPERATION_TYPE_DIVIDEND_TAX        OperationType = 8
	OperationType_OPERATION_TYPE_OUTPUT              OperationType = 9
	OperationType_OPERATION_TYPE_BOND_REPAYMENT      OperationType = 10
	OperationType_OPERATION_TYPE_TAX_CORRECTION      OperationType = 11
	OperationType_OPERATION_TYPE_SERVICE_FEE         OperationType = 12
	OperationType_OPERATION_TYPE_BENEFIT_TAX         OperationType = 13
	OperationType_OPERATION_TYPE_MARGIN_FEE          OperationType = 14
	OperationType_OPERATION_TYPE_BUY                 OperationType = 15
	OperationType_OPERATION_TYPE_BUY_CARD            OperationType = 16
	OperationType_OPERATION_TYPE_INPUT_SECURITIES    OperationType = 17
	OperationType_OPERATION_TYPE_SELL_MARGIN         OperationType = 18
	OperationType_OPERATION_TYPE_DIVIDEND            OperationType = 19
	OperationType_OPERATION_TYPE_BUY_MARGIN          OperationType = 20
	OperationType_OPERATION_TYPE_SELL                OperationType = 21
	OperationType_OPERATION_TYPE_COUPON              OperationType = 22
)

var operationTypeName = map[int32]string{
	0:  "OPERATION_TYPE_UNSPECIFIED",
	1:  "OPERATION_TYPE_INPUT",
	2:  "OPERATION_TYPE_BOND_TAX",
	3:  "OPERATION_TYPE_OUTPUT_SECURITIES",
	4:  "OPERATION_TYPE_OVERNIGHT",
	5:  "OPERATION_TYPE_TAX",
	6:  "OPERATION_TYPE_BOND_REPAYMENT_FULL",
	7:  "OPERATION_TYPE_SELL_CARD",
	8:  "OPERATION_TYPE_DIVIDEND_TAX",
	9:  "OPERATION_TYPE_OUTPUT",
	10: "OPERATION_TYPE_BOND_REPAYMENT",
	11: "OPERATION_TYPE_TAX_CORRECTION",
	12: "OPERATION_TYPE_SERVICE_FEE",
	13: "OPERATION_TYPE_BENEFIT_TAX",
	14: "OPERATION_TYPE_MARGIN_FEE",
	15: "OPERATION_TYPE_BUY",
	16: "OPERATION_TYPE_BUY_CARD",
	17: "OPERATION_TYPE_INPUT_SECURITIES",
	18: "OPERATION_TYPE_SELL_MARGIN",
	19: "OPERATION_TYPE_DIVIDEND",
	20: "OPERATION_TYPE_BUY_MARGIN",
	21: "OPERATION_TYPE_SELL",
	22: "OPERATION_TYPE_COUPON",
}

func (x OperationType) String() string { return enumName(operationTypeName, int32(x)) }

type OperationsRequest struct {
	AccountId string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	From      *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To        *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	State     OperationState         `protobuf:"varint,4,opt,name=state,proto3,enum=tinkoff.public.invest.api.contract.v1.OperationState" json:"state,omitempty"`
	Figi      string                 `protobuf:"bytes,5,opt,name=figi,proto3" json:"figi,omitempty"`
}

func (m *OperationsRequest) Reset()         { *m = OperationsRequest{} }
func (m *OperationsRequest) String() string { return messageString(m) }
func (*OperationsRequest) ProtoMessage()    {}

type OperationsResponse struct {
	Operations []*Operation `protobuf:"bytes,1,rep,name=operations,proto3" json:"operations,omitempty"`
}

func (m *OperationsResponse) Reset()         { *m = OperationsResponse{} }
func (m *OperationsResponse) String() string { return messageString(m) }
func (*OperationsResponse) ProtoMessage()    {}

func (m *OperationsResponse) GetOperations() []*Operation {
	if m != nil {
		return m.Operations
	}
	return nil
}

// Operation is a single entry of the account ledger.
type Operation struct {
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ParentOperationId string                 `protobuf:"bytes,2,opt,name=parent_operation_id,json=parentOperationId,proto3" json:"parent_operation_id,omitempty"`
	Currency          string                 `protobuf:"bytes,3,opt,name=currency,proto3" json:"currency,omitempty"`
	Payment           *MoneyValue            `protobuf:"bytes,4,opt,name=payment,proto3" json:"payment,omitempty"`
	Price             *MoneyValue            `protobuf:"bytes,5,opt,name=price,proto3" json:"price,omitempty"`
	State             OperationState         `protobuf:"varint,6,opt,name=state,proto3,enum=tinkoff.public.invest.api.contract.v1.OperationState" json:"state,omitempty"`
	Quantity          int64                  `protobuf:"varint,7,opt,name=quantity,proto3" json:"quantity,omitempty"`
	QuantityRest      int64                  `protobuf:"varint,8,opt,name=quantity_rest,json=quantityRest,proto3" json:"quantity_rest,omitempty"`
	Figi              string                 `protobuf:"bytes,9,opt,name=figi,proto3" json:"figi,omitempty"`
	InstrumentType    string                 `protobuf:"bytes,10,opt,name=instrument_type,json=instrumentType,proto3" json:"instrument_type,omitempty"`
	Date              *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=date,proto3" json:"date,omitempty"`
	Type              string                 `protobuf:"bytes,12,opt,name=type,proto3" json:"type,omitempty"`
	OperationType     OperationType          `protobuf:"varint,13,opt,name=operation_type,json=operationType,proto3,enum=tinkoff.public.invest.api.contract.v1.OperationType" json:"operation_type,omitempty"`
	Trades            []*OperationTrade      `protobuf:"bytes,14,rep,name=trades,proto3" json:"trades,omitempty"`
	AssetUid          string                 `protobuf:"bytes,16,opt,name=asset_uid,json=assetUid,proto3" json:"asset_uid,omitempty"`
	PositionUid       string                 `protobuf:"bytes,17,opt,name=position_uid,json=positionUid,proto3" json:"position_uid,omitempty"`
	InstrumentUid     string                 `protobuf:"bytes,18,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *Operation) Reset()         { *m = Operation{} }
func (m *Operation) String() string { return messageString(m) }
func (*Operation) ProtoMessage()    {}

func (m *Operation) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Operation) GetPayment() *MoneyValue {
	if m != nil {
		return m.Payment
	}
	return nil
}

func (m *Operation) GetOperationType() OperationType {
	if m != nil {
		return m.OperationType
	}
	return OperationType_OPERATION_TYPE_UNSPECIFIED
}

// OperationTrade is a single execution behind an operation.
type OperationTrade struct {
	TradeId  string                 `protobuf:"bytes,1,opt,name=trade_id,json=tradeId,proto3" json:"trade_id,omitempty"`
	DateTime *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=date_time,json=dateTime,proto3" json:"date_time,omitempty"`
	Quantity int64                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price    *MoneyValue            `protobuf:"bytes,4,opt,name=price,proto3" json:"price,omitempty"`
}

func (m *OperationTrade) Reset()         { *m = OperationTrade{} }
func (m *OperationTrade) String() string { return messageString(m) }
func (*OperationTrade) ProtoMessage()    {}

type PortfolioRequest struct {
	AccountId string                           `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Currency  PortfolioRequest_CurrencyRequest `protobuf:"varint,2,opt,name=currency,proto3,enum=tinkoff.public.invest.api.contract.v1.PortfolioRequest_CurrencyRequest" json:"currency,omitempty"`
}

func (m *PortfolioRequest) Reset()         { *m = PortfolioRequest{} }
func (m *PortfolioRequest) String() string { return messageString(m) }
func (*PortfolioRequest) ProtoMessage()    {}

type PortfolioRequest_CurrencyRequest int32

const (
	PortfolioRequest_RUB PortfolioRequest_CurrencyRequest = 0
	PortfolioRequest_USD PortfolioRequest_CurrencyRequest = 1
	PortfolioRequest_EUR PortfolioRequest_CurrencyRequest = 2
)

var portfolioCurrencyRequestName = map[int32]string{
	0: "RUB",
	1: "USD",
	2: "EUR",
}

func (x PortfolioRequest_CurrencyRequest) String() string {
	return enumName(portfolioCurrencyRequestName, int32(x))
}

type PortfolioResponse struct {
	TotalAmountShares     *MoneyValue          `protobuf:"bytes,1,opt,name=total_amount_shares,json=totalAmountShares,proto3" json:"total_amount_shares,omitempty"`
	TotalAmountBonds      *MoneyValue          `protobuf:"bytes,2,opt,name=total_amount_bonds,json=totalAmountBonds,proto3" json:"total_amount_bonds,omitempty"`
	TotalAmountEtf        *MoneyValue          `protobuf:"bytes,3,opt,name=total_amount_etf,json=totalAmountEtf,proto3" json:"total_amount_etf,omitempty"`
	TotalAmountCurrencies *MoneyValue          `protobuf:"bytes,4,opt,name=total_amount_currencies,json=totalAmountCurrencies,proto3" json:"total_amount_currencies,omitempty"`
	TotalAmountFutures    *MoneyValue          `protobuf:"bytes,5,opt,name=total_amount_futures,json=totalAmountFutures,proto3" json:"total_amount_futures,omitempty"`
	ExpectedYield         *Quotation           `protobuf:"bytes,6,opt,name=expected_yield,json=expectedYield,proto3" json:"expected_yield,omitempty"`
	Positions             []*PortfolioPosition `protobuf:"bytes,7,rep,name=positions,proto3" json:"positions,omitempty"`
	AccountId             string               `protobuf:"bytes,8,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *PortfolioResponse) Reset()         { *m = PortfolioResponse{} }
func (m *PortfolioResponse) String() string { return messageString(m) }
func (*PortfolioResponse) ProtoMessage()    {}

func (m *PortfolioResponse) GetPositions() []*PortfolioPosition {
	if m != nil {
		return m.Positions
	}
	return nil
}

func (m *PortfolioResponse) GetAccountId() string {
	if m != nil {
		return m.AccountId
	}
	return ""
}

// PortfolioPosition is one instrument of the portfolio.
type PortfolioPosition struct {
	Figi                     string      `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	InstrumentType           string      `protobuf:"bytes,2,opt,name=instrument_type,json=instrumentType,proto3" json:"instrument_type,omitempty"`
	Quantity                 *Quotation  `protobuf:"bytes,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	AveragePositionPrice     *MoneyValue `protobuf:"bytes,4,opt,name=average_position_price,json=averagePositionPrice,proto3" json:"average_position_price,omitempty"`
	ExpectedYield            *Quotation  `protobuf:"bytes,5,opt,name=expected_yield,json=expectedYield,proto3" json:"expected_yield,omitempty"`
	CurrentNkd               *MoneyValue `protobuf:"bytes,6,opt,name=current_nkd,json=currentNkd,proto3" json:"current_nkd,omitempty"`
	AveragePositionPricePt   *Quotation  `protobuf:"bytes,7,opt,name=average_position_price_pt,json=averagePositionPricePt,proto3" json:"average_position_price_pt,omitempty"`
	CurrentPrice             *MoneyValue `protobuf:"bytes,8,opt,name=current_price,json=currentPrice,proto3" json:"current_price,omitempty"`
	AveragePositionPriceFifo *MoneyValue `protobuf:"bytes,9,opt,name=average_position_price_fifo,json=averagePositionPriceFifo,proto3" json:"average_position_price_fifo,omitempty"`
	QuantityLots             *Quotation  `protobuf:"bytes,10,opt,name=quantity_lots,json=quantityLots,proto3" json:"quantity_lots,omitempty"`
	Blocked                  bool        `protobuf:"varint,21,opt,name=blocked,proto3" json:"blocked,omitempty"`
	PositionUid              string      `protobuf:"bytes,24,opt,name=position_uid,json=positionUid,proto3" json:"position_uid,omitempty"`
	InstrumentUid            string      `protobuf:"bytes,25,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
	VarMargin                *MoneyValue `protobuf:"bytes,26,opt,name=var_margin,json=varMargin,proto3" json:"var_margin,omitempty"`
	ExpectedYieldFifo        *Quotation  `protobuf:"bytes,27,opt,name=expected_yield_fifo,json=expectedYieldFifo,proto3" json:"expected_yield_fifo,omitempty"`
}

func (m *PortfolioPosition) Reset()         { *m = PortfolioPosition{} }
func (m *PortfolioPosition) String() string { return messageString(m) }
func (*PortfolioPosition) ProtoMessage()    {}

func (m *PortfolioPosition) GetFigi() string {
	if m != nil {
		return m.Figi
	}
	return ""
}

func (m *PortfolioPosition) GetQuantity() *Quotation {
	if m != nil {
		return m.Quantity
	}
	return nil
}

type PositionsRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *PositionsRequest) Reset()         { *m = PositionsRequest{} }
func (m *PositionsRequest) String() string { return messageString(m) }
func (*PositionsRequest) ProtoMessage()    {}

type PositionsResponse struct {
	Money                   []*MoneyValue          `protobuf:"bytes,1,rep,name=money,proto3" json:"money,omitempty"`
	Blocked                 []*MoneyValue          `protobuf:"bytes,2,rep,name=blocked,proto3" json:"blocked,omitempty"`
	Securities              []*PositionsSecurities `protobuf:"bytes,3,rep,name=securities,proto3" json:"securities,omitempty"`
	LimitsLoadingInProgress bool                   `protobuf:"varint,4,opt,name=limits_loading_in_progress,json=limitsLoadingInProgress,proto3" json:"limits_loading_in_progress,omitempty"`
	Futures                 []*PositionsFutures    `protobuf:"bytes,5,rep,name=futures,proto3" json:"futures,omitempty"`
}

func (m *PositionsResponse) Reset()         { *m = PositionsResponse{} }
func (m *PositionsResponse) String() string { return messageString(m) }
func (*PositionsResponse) ProtoMessage()    {}

func (m *PositionsResponse) GetMoney() []*MoneyValue {
	if m != nil {
		return m.Money
	}
	return nil
}

func (m *PositionsResponse) GetSecurities() []*PositionsSecurities {
	if m != nil {
		return m.Securities
	}
	return nil
}

// PositionsSecurities is a security balance of the account.
type PositionsSecurities struct {
	Figi            string `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Blocked         int64  `protobuf:"varint,2,opt,name=blocked,proto3" json:"blocked,omitempty"`
	Balance         int64  `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	PositionUid     string `protobuf:"bytes,4,opt,name=position_uid,json=positionUid,proto3" json:"position_uid,omitempty"`
	InstrumentUid   string `protobuf:"bytes,5,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
	ExchangeBlocked bool   `protobuf:"varint,11,opt,name=exchange_blocked,json=exchangeBlocked,proto3" json:"exchange_blocked,omitempty"`
	InstrumentType  string `protobuf:"bytes,16,opt,name=instrument_type,json=instrumentType,proto3" json:"instrument_type,omitempty"`
}

func (m *PositionsSecurities) Reset()         { *m = PositionsSecurities{} }
func (m *PositionsSecurities) String() string { return messageString(m) }
func (*PositionsSecurities) ProtoMessage()    {}

// PositionsFutures is a futures balance of the account.
type PositionsFutures struct {
	Figi          string `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Blocked       int64  `protobuf:"varint,2,opt,name=blocked,proto3" json:"blocked,omitempty"`
	Balance       int64  `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	PositionUid   string `protobuf:"bytes,4,opt,name=position_uid,json=positionUid,proto3" json:"position_uid,omitempty"`
	InstrumentUid string `protobuf:"bytes,5,opt,name=instrument_uid,json=instrumentUid,proto3" json:"instrument_uid,omitempty"`
}

func (m *PositionsFutures) Reset()         { *m = PositionsFutures{} }
func (m *PositionsFutures) String() string { return messageString(m) }
func (*PositionsFutures) ProtoMessage()    {}

type WithdrawLimitsRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *WithdrawLimitsRequest) Reset()         { *m = WithdrawLimitsRequest{} }
func (m *WithdrawLimitsRequest) String() string { return messageString(m) }
func (*WithdrawLimitsRequest) ProtoMessage()    {}

type WithdrawLimitsResponse struct {
	Money            []*MoneyValue `protobuf:"bytes,1,rep,name=money,proto3" json:"money,omitempty"`
	Blocked          []*MoneyValue `protobuf:"bytes,2,rep,name=blocked,proto3" json:"blocked,omitempty"`
	BlockedGuarantee []*MoneyValue `protobuf:"bytes,3,rep,name=blocked_guarantee,json=blockedGuarantee,proto3" json:"blocked_guarantee,omitempty"`
}

func (m *WithdrawLimitsResponse) Reset()         { *m = WithdrawLimitsResponse{} }
func (m *WithdrawLimitsResponse) String() string { return messageString(m) }
func (*WithdrawLimitsResponse) ProtoMessage()    {}

func (m *WithdrawLimitsResponse) GetMoney() []*MoneyValue {
	if m != nil {
		return m.Money
	}
	return nil
}

// PortfolioStreamRequest subscribes accounts to portfolio updates.
type PortfolioStreamRequest struct {
	Accounts []string `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (m *PortfolioStreamRequest) Reset()         { *m = PortfolioStreamRequest{} }
func (m *PortfolioStreamRequest) String() string { return messageString(m) }
func (*PortfolioStreamRequest) ProtoMessage()    {}

// PortfolioStreamResponse is the server-to-client frame of the portfolio stream.
type PortfolioStreamResponse struct {
	// Types that are valid to be assigned to Payload:
	//	*PortfolioStreamResponse_Subscriptions
	//	*PortfolioStreamResponse_Portfolio
	//	*PortfolioStreamResponse_Ping
	Payload isPortfolioStreamResponse_Payload `protobuf_oneof:"payload"`
}

func (m *PortfolioStreamResponse) Reset()         { *m = PortfolioStreamResponse{} }
func (m *PortfolioStreamResponse) String() string { return messageString(m) }
func (*PortfolioStreamResponse) ProtoMessage()    {}

type isPortfolioStreamResponse_Payload interface {
	isPortfolioStreamResponse_Payload()
}

type PortfolioStreamResponse_Subscriptions struct {
	Subscriptions *PortfolioSubscriptionResult `protobuf:"bytes,1,opt,name=subscriptions,proto3,oneof"`
}

type PortfolioStreamResponse_Portfolio struct {
	Portfolio *PortfolioResponse `protobuf:"bytes,2,opt,name=portfolio,proto3,oneof"`
}

type PortfolioStreamResponse_Ping struct {
	Ping *Ping `protobuf:"bytes,3,opt,name=ping,proto3,oneof"`
}

func (*PortfolioStreamResponse_Subscriptions) isPortfolioStreamResponse_Payload() {}

func (*PortfolioStreamResponse_Portfolio) isPortfolioStreamResponse_Payload() {}

func (*PortfolioStreamResponse_Ping) isPortfolioStreamResponse_Payload() {}

func (m *PortfolioStreamResponse) GetPayload() isPortfolioStreamResponse_Payload {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *PortfolioStreamResponse) GetSubscriptions() *PortfolioSubscriptionResult {
	if x, ok := m.GetPayload().(*PortfolioStreamResponse_Subscriptions); ok {
		return x.Subscriptions
	}
	return nil
}

func (m *PortfolioStreamResponse) GetPortfolio() *PortfolioResponse {
	if x, ok := m.GetPayload().(*PortfolioStreamResponse_Portfolio); ok {
		return x.Portfolio
	}
	return nil
}

func (m *PortfolioStreamResponse) GetPing() *Ping {
	if x, ok := m.GetPayload().(*PortfolioStreamResponse_Ping); ok {
		return x.Ping
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*PortfolioStreamResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*PortfolioStreamResponse_Subscriptions)(nil),
		(*PortfolioStreamResponse_Portfolio)(nil),
		(*PortfolioStreamResponse_Ping)(nil),
	}
}

type PortfolioSubscriptionResult struct {
	Accounts []*AccountSubscriptionStatus `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (m *PortfolioSubscriptionResult) Reset()         { *m = PortfolioSubscriptionResult{} }
func (m *PortfolioSubscriptionResult) String() string { return messageString(m) }
func (*PortfolioSubscriptionResult) ProtoMessage()    {}

// PortfolioSubscriptionStatus is the per-account result of a stream subscription.
type PortfolioSubscriptionStatus int32

const (
	PortfolioSubscriptionStatus_PORTFOLIO_SUBSCRIPTION_STATUS_UNSPECIFIED       PortfolioSubscriptionStatus = 0
	PortfolioSubscriptionStatus_PORTFOLIO_SUBSCRIPTION_STATUS_SUCCESS           PortfolioSubscriptionStatus = 1
	PortfolioSubscriptionStatus_PORTFOLIO_SUBSCRIPTION_STATUS_ACCOUNT_NOT_FOUND PortfolioSubscriptionStatus = 2
	PortfolioSubscriptionStatus_PORTFOLIO_SUBSCRIPTION_STATUS_INTERNAL_ERROR    PortfolioSubscriptionStatus = 3
)

var portfolioSubscriptionStatusName = map[int32]string{
	0: "PORTFOLIO_SUBSCRIPTION_STATUS_UNSPECIFIED",
	1: "PORTFOLIO_SUBSCRIPTION_STATUS_SUCCESS",
	2: "PORTFOLIO_SUBSCRIPTION_STATUS_ACCOUNT_NOT_FOUND",
	3: "PORTFOLIO_SUBSCRIPTION_STATUS_INTERNAL_ERROR",
}

func (x PortfolioSubscriptionStatus) String() string {
	return enumName(portfolioSubscriptionStatusName, int32(x))
}

type AccountSubscriptionStatus struct {
	AccountId          string                      `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	SubscriptionStatus PortfolioSubscriptionStatus `protobuf:"varint,6,opt,name=subscription_status,json=subscriptionStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.PortfolioSubscriptionStatus" json:"subscription_status,omitempty"`
}

func (m *AccountSubscriptionStatus) Reset()         { *m = AccountSubscriptionStatus{} }
func (m *AccountSubscriptionStatus) String() string { return messageString(m) }
func (*AccountSubscriptionStatus) ProtoMessage()    {}

// PositionsStreamRequest subscribes accounts to position updates.
type PositionsStreamRequest struct {
	Accounts []string `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (m *PositionsStreamRequest) Reset()         { *m = PositionsStreamRequest{} }
func (m *PositionsStreamRequest) String() string { return messageString(m) }
func (*PositionsStreamRequest) ProtoMessage()    {}

// PositionsStreamResponse is the server-to-client frame of the positions stream.
type PositionsStreamResponse struct {
	// Types that are valid to be assigned to Payload:
	//	*PositionsStreamResponse_Subscriptions
	//	*PositionsStreamResponse_Position
	//	*PositionsStreamResponse_Ping
	Payload isPositionsStreamResponse_Payload `protobuf_oneof:"payload"`
}

func (m *PositionsStreamResponse) Reset()         { *m = PositionsStreamResponse{} }
func (m *PositionsStreamResponse) String() string { return messageString(m) }
func (*PositionsStreamResponse) ProtoMessage()    {}

type isPositionsStreamResponse_Payload interface {
	isPositionsStreamResponse_Payload()
}

type PositionsStreamResponse_Subscriptions struct {
	Subscriptions *PositionsSubscriptionResult `protobuf:"bytes,1,opt,name=subscriptions,proto3,oneof"`
}

type PositionsStreamResponse_Position struct {
	Position *PositionData `protobuf:"bytes,2,opt,name=position,proto3,oneof"`
}

type PositionsStreamResponse_Ping struct {
	Ping *Ping `protobuf:"bytes,3,opt,name=ping,proto3,oneof"`
}

func (*PositionsStreamResponse_Subscriptions) isPositionsStreamResponse_Payload() {}

func (*PositionsStreamResponse_Position) isPositionsStreamResponse_Payload() {}

func (*PositionsStreamResponse_Ping) isPositionsStreamResponse_Payload() {}

func (m *PositionsStreamResponse) GetPayload() isPositionsStreamResponse_Payload {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *PositionsStreamResponse) GetSubscriptions() *PositionsSubscriptionResult {
	if x, ok := m.GetPayload().(*PositionsStreamResponse_Subscriptions); ok {
		return x.Subscriptions
	}
	return nil
}

func (m *PositionsStreamResponse) GetPosition() *PositionData {
	if x, ok := m.GetPayload().(*PositionsStreamResponse_Position); ok {
		return x.Position
	}
	return nil
}

func (m *PositionsStreamResponse) GetPing() *Ping {
	if x, ok := m.GetPayload().(*PositionsStreamResponse_Ping); ok {
		return x.Ping
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*PositionsStreamResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*PositionsStreamResponse_Subscriptions)(nil),
		(*PositionsStreamResponse_Position)(nil),
		(*PositionsStreamResponse_Ping)(nil),
	}
}

type PositionsSubscriptionResult struct {
	Accounts []*PositionsSubscriptionStatus `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (m *PositionsSubscriptionResult) Reset()         { *m = PositionsSubscriptionResult{} }
func (m *PositionsSubscriptionResult) String() string { return messageString(m) }
func (*PositionsSubscriptionResult) ProtoMessage()    {}

// PositionsAccountSubscriptionStatus is the per-account result of a positions stream subscription.
type PositionsAccountSubscriptionStatus int32

const (
	PositionsAccountSubscriptionStatus_POSITIONS_SUBSCRIPTION_STATUS_UNSPECIFIED       PositionsAccountSubscriptionStatus = 0
	PositionsAccountSubscriptionStatus_POSITIONS_SUBSCRIPTION_STATUS_SUCCESS           PositionsAccountSubscriptionStatus = 1
	PositionsAccountSubscriptionStatus_POSITIONS_SUBSCRIPTION_STATUS_ACCOUNT_NOT_FOUND PositionsAccountSubscriptionStatus = 2
	PositionsAccountSubscriptionStatus_POSITIONS_SUBSCRIPTION_STATUS_INTERNAL_ERROR    PositionsAccountSubscriptionStatus = 3
)

var positionsAccountSubscriptionStatusName = map[int32]string{
	0: "POSITIONS_SUBSCRIPTION_STATUS_UNSPECIFIED",
	1: "POSITIONS_SUBSCRIPTION_STATUS_SUCCESS",
	2: "POSITIONS_SUBSCRIPTION_STATUS_ACCOUNT_NOT_FOUND",
	3: "POSITIONS_SUBSCRIPTION_STATUS_INTERNAL_ERROR",
}

func (x PositionsAccountSubscriptionStatus) String() string {
	return enumName(positionsAccountSubscriptionStatusName, int32(x))
}

type PositionsSubscriptionStatus struct {
	AccountId          string                             `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	SubscriptionStatus PositionsAccountSubscriptionStatus `protobuf:"varint,6,opt,name=subscription_status,json=subscriptionStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.PositionsAccountSubscriptionStatus" json:"subscription_status,omitempty"`
}

func (m *PositionsSubscriptionStatus) Reset()         { *m = PositionsSubscriptionStatus{} }
func (m *PositionsSubscriptionStatus) String() string { return messageString(m) }
func (*PositionsSubscriptionStatus) ProtoMessage()    {}

// PositionData is a streamed position snapshot for one account.
type PositionData struct {
	AccountId  string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Money      []*PositionsMoney      `protobuf:"bytes,2,rep,name=money,proto3" json:"money,omitempty"`
	Securities []*PositionsSecurities `protobuf:"bytes,3,rep,name=securities,proto3" json:"securities,omitempty"`
	Futures    []*PositionsFutures    `protobuf:"bytes,4,rep,name=futures,proto3" json:"futures,omitempty"`
	Date       *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=date,proto3" json:"date,omitempty"`
}

func (m *PositionData) Reset()         { *m = PositionData{} }
func (m *PositionData) String() string { return messageString(m) }
func (*PositionData) ProtoMessage()    {}

// PositionsMoney is a currency balance with its blocked part.
type PositionsMoney struct {
	AvailableValue *MoneyValue `protobuf:"bytes,1,opt,name=available_value,json=availableValue,proto3" json:"available_value,omitempty"`
	BlockedValue   *MoneyValue `protobuf:"bytes,2,opt,name=blocked_value,json=blockedValue,proto3" json:"blocked_value,omitempty"`
}

func (m *PositionsMoney) Reset()         { *m = PositionsMoney{} }
func (m *PositionsMoney) String() string { return messageString(m) }
func (*PositionsMoney) ProtoMessage()    {}
