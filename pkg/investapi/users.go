package investapi

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// AccountType is the kind of brokerage account.
type AccountType int32

const (
	AccountType_ACCOUNT_TYPE_UNSPECIFIED AccountType = 0
	AccountType_ACCOUNT_TYPE_TINKOFF     AccountType = 1
	AccountType_ACCOUNT_TYPE_TINKOFF_IIS AccountType = 2
	AccountType_ACCOUNT_TYPE_INVEST_BOX  AccountType = 3
)

var accountTypeName = map[int32]string{
	0: "ACCOUNT_TYPE_UNSPECIFIED",
	1: "ACCOUNT_TYPE_TINKOFF",
	2: "ACCOUNT_TYPE_TINKOFF_IIS",
	3: "ACCOUNT_TYPE_INVEST_BOX",
}

func (x AccountType) String() string { return enumName(accountTypeName, int32(x)) }

// AccountStatus is the lifecycle state of an account.
type AccountStatus int32

const (
	AccountStatus_ACCOUNT_STATUS_UNSPECIFIED AccountStatus = 0
	AccountStatus_ACCOUNT_STATUS_NEW         AccountStatus = 1
	AccountStatus_ACCOUNT_STATUS_OPEN        AccountStatus = 2
	AccountStatus_ACCOUNT_STATUS_CLOSED      AccountStatus = 3
)

var accountStatusName = map[int32]string{
	0: "ACCOUNT_STATUS_UNSPECIFIED",
	1: "ACCOUNT_STATUS_NEW",
	2: "ACCOUNT_STATUS_OPEN",
	3: "ACCOUNT_STATUS_CLOSED",
}

func (x AccountStatus) String() string { return enumName(accountStatusName, int32(x)) }

// AccessLevel is the token's access level to an account.
type AccessLevel int32

const (
	AccessLevel_ACCOUNT_ACCESS_LEVEL_UNSPECIFIED AccessLevel = 0
	AccessLevel_ACCOUNT_ACCESS_LEVEL_FULL_ACCESS AccessLevel = 1
	AccessLevel_ACCOUNT_ACCESS_LEVEL_READ_ONLY   AccessLevel = 2
	AccessLevel_ACCOUNT_ACCESS_LEVEL_NO_ACCESS   AccessLevel = 3
)

var accessLevelName = map[int32]string{
	0: "ACCOUNT_ACCESS_LEVEL_UNSPECIFIED",
	1: "ACCOUNT_ACCESS_LEVEL_FULL_ACCESS",
	2: "ACCOUNT_ACCESS_LEVEL_READ_ONLY",
	3: "ACCOUNT_ACCESS_LEVEL_NO_ACCESS",
}

func (x AccessLevel) String() string { return enumName(accessLevelName, int32(x)) }

type GetAccountsRequest struct{}

func (m *GetAccountsRequest) Reset()         { *m = GetAccountsRequest{} }
func (m *GetAccountsRequest) String() string { return messageString(m) }
func (*GetAccountsRequest) ProtoMessage()    {}

type GetAccountsResponse struct {
	Accounts []*Account `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (m *GetAccountsResponse) Reset()         { *m = GetAccountsResponse{} }
func (m *GetAccountsResponse) String() string { return messageString(m) }
func (*GetAccountsResponse) ProtoMessage()    {}

func (m *GetAccountsResponse) GetAccounts() []*Account {
	if m != nil {
		return m.Accounts
	}
	return nil
}

type Account struct {
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type        AccountType            `protobuf:"varint,2,opt,name=type,proto3,enum=tinkoff.public.invest.api.contract.v1.AccountType" json:"type,omitempty"`
	Name        string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Status      AccountStatus          `protobuf:"varint,4,opt,name=status,proto3,enum=tinkoff.public.invest.api.contract.v1.AccountStatus" json:"status,omitempty"`
	OpenedDate  *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=opened_date,json=openedDate,proto3" json:"opened_date,omitempty"`
	ClosedDate  *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=closed_date,json=closedDate,proto3" json:"closed_date,omitempty"`
	AccessLevel AccessLevel            `protobuf:"varint,7,opt,name=access_level,json=accessLevel,proto3,enum=tinkoff.public.invest.api.contract.v1.AccessLevel" json:"access_level,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return messageString(m) }
func (*Account) ProtoMessage()    {}

func (m *Account) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Account) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type GetMarginAttributesRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *GetMarginAttributesRequest) Reset()         { *m = GetMarginAttributesRequest{} }
func (m *GetMarginAttributesRequest) String() string { return messageString(m) }
func (*GetMarginAttributesRequest) ProtoMessage()    {}

type GetMarginAttributesResponse struct {
	LiquidPortfolio       *MoneyValue `protobuf:"bytes,1,opt,name=liquid_portfolio,json=liquidPortfolio,proto3" json:"liquid_portfolio,omitempty"`
	StartingMargin        *MoneyValue `protobuf:"bytes,2,opt,name=starting_margin,json=startingMargin,proto3" json:"starting_margin,omitempty"`
	MinimalMargin         *MoneyValue `protobuf:"bytes,3,opt,name=minimal_margin,json=minimalMargin,proto3" json:"minimal_margin,omitempty"`
	FundsSufficiencyLevel *Quotation  `protobuf:"bytes,4,opt,name=funds_sufficiency_level,json=fundsSufficiencyLevel,proto3" json:"funds_sufficiency_level,omitempty"`
	AmountOfMissingFunds  *MoneyValue `protobuf:"bytes,5,opt,name=amount_of_missing_funds,json=amountOfMissingFunds,proto3" json:"amount_of_missing_funds,omitempty"`
	CorrectedMargin       *MoneyValue `protobuf:"bytes,6,opt,name=corrected_margin,json=correctedMargin,proto3" json:"corrected_margin,omitempty"`
}

func (m *GetMarginAttributesResponse) Reset()         { *m = GetMarginAttributesResponse{} }
func (m *GetMarginAttributesResponse) String() string { return messageString(m) }
func (*GetMarginAttributesResponse) ProtoMessage()    {}

type GetUserTariffRequest struct{}

func (m *GetUserTariffRequest) Reset()         { *m = GetUserTariffRequest{} }
func (m *GetUserTariffRequest) String() string { return messageString(m) }
func (*GetUserTariffRequest) ProtoMessage()    {}

type GetUserTariffResponse struct {
	UnaryLimits  []*UnaryLimit  `protobuf:"bytes,1,rep,name=unary_limits,json=unaryLimits,proto3" json:"unary_limits,omitempty"`
	StreamLimits []*StreamLimit `protobuf:"bytes,2,rep,name=stream_limits,json=streamLimits,proto3" json:"stream_limits,omitempty"`
}

func (m *GetUserTariffResponse) Reset()         { *m = GetUserTariffResponse{} }
func (m *GetUserTariffResponse) String() string { return messageString(m) }
func (*GetUserTariffResponse) ProtoMessage()    {}

// UnaryLimit is a per-minute quota shared by a group of unary methods.
type UnaryLimit struct {
	LimitPerMinute int32    `protobuf:"varint,1,opt,name=limit_per_minute,json=limitPerMinute,proto3" json:"limit_per_minute,omitempty"`
	Methods        []string `protobuf:"bytes,2,rep,name=methods,proto3" json:"methods,omitempty"`
}

func (m *UnaryLimit) Reset()         { *m = UnaryLimit{} }
func (m *UnaryLimit) String() string { return messageString(m) }
func (*UnaryLimit) ProtoMessage()    {}

// StreamLimit is the cap on concurrently open streams of a given kind.
type StreamLimit struct {
	Limit   int32    `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	Streams []string `protobuf:"bytes,2,rep,name=streams,proto3" json:"streams,omitempty"`
}

func (m *StreamLimit) Reset()         { *m = StreamLimit{} }
func (m *StreamLimit) String() string { return messageString(m) }
func (*StreamLimit) ProtoMessage()    {}

type GetInfoRequest struct{}

func (m *GetInfoRequest) Reset()         { *m = GetInfoRequest{} }
func (m *GetInfoRequest) String() string { return messageString(m) }
func (*GetInfoRequest) ProtoMessage()    {}

type GetInfoResponse struct {
	PremStatus           bool     `protobuf:"varint,1,opt,name=prem_status,json=premStatus,proto3" json:"prem_status,omitempty"`
	QualStatus           bool     `protobuf:"varint,2,opt,name=qual_status,json=qualStatus,proto3" json:"qual_status,omitempty"`
	QualifiedForWorkWith []string `protobuf:"bytes,3,rep,name=qualified_for_work_with,json=qualifiedForWorkWith,proto3" json:"qualified_for_work_with,omitempty"`
	Tariff               string   `protobuf:"bytes,4,opt,name=tariff,proto3" json:"tariff,omitempty"`
}

func (m *GetInfoResponse) Reset()         { *m = GetInfoResponse{} }
func (m *GetInfoResponse) String() string { return messageString(m) }
func (*GetInfoResponse) ProtoMessage()    {}
