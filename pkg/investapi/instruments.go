package investapi

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// InstrumentStatus filters instrument listings.
type InstrumentStatus int32

const (
	InstrumentStatus_INSTRUMENT_STATUS_UNSPECIFIED InstrumentStatus = 0
	InstrumentStatus_INSTRUMENT_STATUS_BASE        InstrumentStatus = 1
	InstrumentStatus_INSTRUMENT_STATUS_ALL         InstrumentStatus = 2
)

var instrumentStatusName = map[int32]string{
	0: "INSTRUMENT_STATUS_UNSPECIFIED",
	1: "INSTRUMENT_STATUS_BASE",
	2: "INSTRUMENT_STATUS_ALL",
}

func (x InstrumentStatus) String() string { return enumName(instrumentStatusName, int32(x)) }

// InstrumentIdType selects the identifier kind for single-instrument lookups.
type InstrumentIdType int32

const (
	InstrumentIdType_INSTRUMENT_ID_UNSPECIFIED       InstrumentIdType = 0
	InstrumentIdType_INSTRUMENT_ID_TYPE_FIGI         InstrumentIdType = 1
	InstrumentIdType_INSTRUMENT_ID_TYPE_TICKER       InstrumentIdType = 2
	InstrumentIdType_INSTRUMENT_ID_TYPE_UID          InstrumentIdType = 3
	InstrumentIdType_INSTRUMENT_ID_TYPE_POSITION_UID InstrumentIdType = 4
)

var instrumentIdTypeName = map[int32]string{
	0: "INSTRUMENT_ID_UNSPECIFIED",
	1: "INSTRUMENT_ID_TYPE_FIGI",
	2: "INSTRUMENT_ID_TYPE_TICKER",
	3: "INSTRUMENT_ID_TYPE_UID",
	4: "INSTRUMENT_ID_TYPE_POSITION_UID",
}

func (x InstrumentIdType) String() string { return enumName(instrumentIdTypeName, int32(x)) }

type InstrumentsRequest struct {
	InstrumentStatus InstrumentStatus `protobuf:"varint,1,opt,name=instrument_status,json=instrumentStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.InstrumentStatus" json:"instrument_status,omitempty"`
}

func (m *InstrumentsRequest) Reset()         { *m = InstrumentsRequest{} }
func (m *InstrumentsRequest) String() string { return messageString(m) }
func (*InstrumentsRequest) ProtoMessage()    {}

type InstrumentRequest struct {
	IdType    InstrumentIdType `protobuf:"varint,1,opt,name=id_type,json=idType,proto3,enum=tinkoff.public.invest.api.contract.v1.InstrumentIdType" json:"id_type,omitempty"`
	ClassCode string           `protobuf:"bytes,2,opt,name=class_code,json=classCode,proto3" json:"class_code,omitempty"`
	Id        string           `protobuf:"bytes,3,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *InstrumentRequest) Reset()         { *m = InstrumentRequest{} }
func (m *InstrumentRequest) String() string { return messageString(m) }
func (*InstrumentRequest) ProtoMessage()    {}

// Share is an equity instrument.
type Share struct {
	Figi                  string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Ticker                string                 `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	ClassCode             string                 `protobuf:"bytes,3,opt,name=class_code,json=classCode,proto3" json:"class_code,omitempty"`
	Isin                  string                 `protobuf:"bytes,4,opt,name=isin,proto3" json:"isin,omitempty"`
	Lot                   int32                  `protobuf:"varint,5,opt,name=lot,proto3" json:"lot,omitempty"`
	Currency              string                 `protobuf:"bytes,6,opt,name=currency,proto3" json:"currency,omitempty"`
	Klong                 *Quotation             `protobuf:"bytes,7,opt,name=klong,proto3" json:"klong,omitempty"`
	Kshort                *Quotation             `protobuf:"bytes,8,opt,name=kshort,proto3" json:"kshort,omitempty"`
	Dlong                 *Quotation             `protobuf:"bytes,9,opt,name=dlong,proto3" json:"dlong,omitempty"`
	Dshort                *Quotation             `protobuf:"bytes,10,opt,name=dshort,proto3" json:"dshort,omitempty"`
	DlongMin              *Quotation             `protobuf:"bytes,11,opt,name=dlong_min,json=dlongMin,proto3" json:"dlong_min,omitempty"`
	DshortMin             *Quotation             `protobuf:"bytes,12,opt,name=dshort_min,json=dshortMin,proto3" json:"dshort_min,omitempty"`
	ShortEnabledFlag      bool                   `protobuf:"varint,13,opt,name=short_enabled_flag,json=shortEnabledFlag,proto3" json:"short_enabled_flag,omitempty"`
	Name                  string                 `protobuf:"bytes,15,opt,name=name,proto3" json:"name,omitempty"`
	Exchange              string                 `protobuf:"bytes,16,opt,name=exchange,proto3" json:"exchange,omitempty"`
	IpoDate               *timestamppb.Timestamp `protobuf:"bytes,17,opt,name=ipo_date,json=ipoDate,proto3" json:"ipo_date,omitempty"`
	IssueSize             int64                  `protobuf:"varint,18,opt,name=issue_size,json=issueSize,proto3" json:"issue_size,omitempty"`
	CountryOfRisk         string                 `protobuf:"bytes,19,opt,name=country_of_risk,json=countryOfRisk,proto3" json:"country_of_risk,omitempty"`
	CountryOfRiskName     string                 `protobuf:"bytes,20,opt,name=country_of_risk_name,json=countryOfRiskName,proto3" json:"country_of_risk_name,omitempty"`
	Sector                string                 `protobuf:"bytes,21,opt,name=sector,proto3" json:"sector,omitempty"`
	IssueSizePlan         int64                  `protobuf:"varint,22,opt,name=issue_size_plan,json=issueSizePlan,proto3" json:"issue_size_plan,omitempty"`
	Nominal               *MoneyValue            `protobuf:"bytes,23,opt,name=nominal,proto3" json:"nominal,omitempty"`
	TradingStatus         SecurityTradingStatus  `protobuf:"varint,25,opt,name=trading_status,json=tradingStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SecurityTradingStatus" json:"trading_status,omitempty"`
	OtcFlag               bool                   `protobuf:"varint,26,opt,name=otc_flag,json=otcFlag,proto3" json:"otc_flag,omitempty"`
	BuyAvailableFlag      bool                   `protobuf:"varint,27,opt,name=buy_available_flag,json=buyAvailableFlag,proto3" json:"buy_available_flag,omitempty"`
	SellAvailableFlag     bool                   `protobuf:"varint,28,opt,name=sell_available_flag,json=sellAvailableFlag,proto3" json:"sell_available_flag,omitempty"`
	DivYieldFlag          bool                   `protobuf:"varint,29,opt,name=div_yield_flag,json=divYieldFlag,proto3" json:"div_yield_flag,omitempty"`
	MinPriceIncrement     *Quotation             `protobuf:"bytes,31,opt,name=min_price_increment,json=minPriceIncrement,proto3" json:"min_price_increment,omitempty"`
	ApiTradeAvailableFlag bool                   `protobuf:"varint,32,opt,name=api_trade_available_flag,json=apiTradeAvailableFlag,proto3" json:"api_trade_available_flag,omitempty"`
	Uid                   string                 `protobuf:"bytes,33,opt,name=uid,proto3" json:"uid,omitempty"`
}

func (m *Share) Reset()         { *m = Share{} }
func (m *Share) String() string { return messageString(m) }
func (*Share) ProtoMessage()    {}

type SharesResponse struct {
	Instruments []*Share `protobuf:"bytes,1,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *SharesResponse) Reset()         { *m = SharesResponse{} }
func (m *SharesResponse) String() string { return messageString(m) }
func (*SharesResponse) ProtoMessage()    {}

func (m *SharesResponse) GetInstruments() []*Share {
	if m != nil {
		return m.Instruments
	}
	return nil
}

// Bond is a debt instrument.
type Bond struct {
	Figi                  string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Ticker                string                 `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	ClassCode             string                 `protobuf:"bytes,3,opt,name=class_code,json=classCode,proto3" json:"class_code,omitempty"`
	Isin                  string                 `protobuf:"bytes,4,opt,name=isin,proto3" json:"isin,omitempty"`
	Lot                   int32                  `protobuf:"varint,5,opt,name=lot,proto3" json:"lot,omitempty"`
	Currency              string                 `protobuf:"bytes,6,opt,name=currency,proto3" json:"currency,omitempty"`
	ShortEnabledFlag      bool                   `protobuf:"varint,13,opt,name=short_enabled_flag,json=shortEnabledFlag,proto3" json:"short_enabled_flag,omitempty"`
	Name                  string                 `protobuf:"bytes,15,opt,name=name,proto3" json:"name,omitempty"`
	Exchange              string                 `protobuf:"bytes,16,opt,name=exchange,proto3" json:"exchange,omitempty"`
	CouponQuantityPerYear int32                  `protobuf:"varint,17,opt,name=coupon_quantity_per_year,json=couponQuantityPerYear,proto3" json:"coupon_quantity_per_year,omitempty"`
	MaturityDate          *timestamppb.Timestamp `protobuf:"bytes,18,opt,name=maturity_date,json=maturityDate,proto3" json:"maturity_date,omitempty"`
	Nominal               *MoneyValue            `protobuf:"bytes,19,opt,name=nominal,proto3" json:"nominal,omitempty"`
	PlacementDate         *timestamppb.Timestamp `protobuf:"bytes,22,opt,name=placement_date,json=placementDate,proto3" json:"placement_date,omitempty"`
	PlacementPrice        *MoneyValue            `protobuf:"bytes,23,opt,name=placement_price,json=placementPrice,proto3" json:"placement_price,omitempty"`
	AciValue              *MoneyValue            `protobuf:"bytes,24,opt,name=aci_value,json=aciValue,proto3" json:"aci_value,omitempty"`
	CountryOfRisk         string                 `protobuf:"bytes,25,opt,name=country_of_risk,json=countryOfRisk,proto3" json:"country_of_risk,omitempty"`
	CountryOfRiskName     string                 `protobuf:"bytes,26,opt,name=country_of_risk_name,json=countryOfRiskName,proto3" json:"country_of_risk_name,omitempty"`
	Sector                string                 `protobuf:"bytes,27,opt,name=sector,proto3" json:"sector,omitempty"`
	IssueKind             string                 `protobuf:"bytes,28,opt,name=issue_kind,json=issueKind,proto3" json:"issue_kind,omitempty"`
	IssueSize             int64                  `protobuf:"varint,29,opt,name=issue_size,json=issueSize,proto3" json:"issue_size,omitempty"`
	IssueSizePlan         int64                  `protobuf:"varint,30,opt,name=issue_size_plan,json=issueSizePlan,proto3" json:"issue_size_plan,omitempty"`
	TradingStatus         SecurityTradingStatus  `protobuf:"varint,31,opt,name=trading_status,json=tradingStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SecurityTradingStatus" json:"trading_status,omitempty"`
	OtcFlag               bool                   `protobuf:"varint,32,opt,name=otc_flag,json=otcFlag,proto3" json:"otc_flag,omitempty"`
	BuyAvailableFlag      bool                   `protobuf:"varint,33,opt,name=buy_available_flag,json=buyAvailableFlag,proto3" json:"buy_available_flag,omitempty"`
	SellAvailableFlag     bool                   `protobuf:"varint,34,opt,name=sell_available_flag,json=sellAvailableFlag,proto3" json:"sell_available_flag,omitempty"`
	FloatingCouponFlag    bool                   `protobuf:"varint,35,opt,name=floating_coupon_flag,json=floatingCouponFlag,proto3" json:"floating_coupon_flag,omitempty"`
	PerpetualFlag         bool                   `protobuf:"varint,36,opt,name=perpetual_flag,json=perpetualFlag,proto3" json:"perpetual_flag,omitempty"`
	AmortizationFlag      bool                   `protobuf:"varint,37,opt,name=amortization_flag,json=amortizationFlag,proto3" json:"amortization_flag,omitempty"`
	MinPriceIncrement     *Quotation             `protobuf:"bytes,38,opt,name=min_price_increment,json=minPriceIncrement,proto3" json:"min_price_increment,omitempty"`
	ApiTradeAvailableFlag bool                   `protobuf:"varint,39,opt,name=api_trade_available_flag,json=apiTradeAvailableFlag,proto3" json:"api_trade_available_flag,omitempty"`
	Uid                   string                 `protobuf:"bytes,40,opt,name=uid,proto3" json:"uid,omitempty"`
}

func (m *Bond) Reset()         { *m = Bond{} }
func (m *Bond) String() string { return messageString(m) }
func (*Bond) ProtoMessage()    {}

type BondsResponse struct {
	Instruments []*Bond `protobuf:"bytes,1,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *BondsResponse) Reset()         { *m = BondsResponse{} }
func (m *BondsResponse) String() string { return messageString(m) }
func (*BondsResponse) ProtoMessage()    {}

func (m *BondsResponse) GetInstruments() []*Bond {
	if m != nil {
		return m.Instruments
	}
	return nil
}

// Etf is an exchange-traded fund.
type Etf struct {
	Figi                  string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Ticker                string                 `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	ClassCode             string                 `protobuf:"bytes,3,opt,name=class_code,json=classCode,proto3" json:"class_code,omitempty"`
	Isin                  string                 `protobuf:"bytes,4,opt,name=isin,proto3" json:"isin,omitempty"`
	Lot                   int32                  `protobuf:"varint,5,opt,name=lot,proto3" json:"lot,omitempty"`
	Currency              string                 `protobuf:"bytes,6,opt,name=currency,proto3" json:"currency,omitempty"`
	ShortEnabledFlag      bool                   `protobuf:"varint,13,opt,name=short_enabled_flag,json=shortEnabledFlag,proto3" json:"short_enabled_flag,omitempty"`
	Name                  string                 `protobuf:"bytes,15,opt,name=name,proto3" json:"name,omitempty"`
	Exchange              string                 `protobuf:"bytes,16,opt,name=exchange,proto3" json:"exchange,omitempty"`
	FixedCommission       *Quotation             `protobuf:"bytes,17,opt,name=fixed_commission,json=fixedCommission,proto3" json:"fixed_commission,omitempty"`
	FocusType             string                 `protobuf:"bytes,18,opt,name=focus_type,json=focusType,proto3" json:"focus_type,omitempty"`
	ReleasedDate          *timestamppb.Timestamp `protobuf:"bytes,19,opt,name=released_date,json=releasedDate,proto3" json:"released_date,omitempty"`
	NumShares             *Quotation             `protobuf:"bytes,20,opt,name=num_shares,json=numShares,proto3" json:"num_shares,omitempty"`
	CountryOfRisk         string                 `protobuf:"bytes,21,opt,name=country_of_risk,json=countryOfRisk,proto3" json:"country_of_risk,omitempty"`
	CountryOfRiskName     string                 `protobuf:"bytes,22,opt,name=country_of_risk_name,json=countryOfRiskName,proto3" json:"country_of_risk_name,omitempty"`
	Sector                string                 `protobuf:"bytes,23,opt,name=sector,proto3" json:"sector,omitempty"`
	RebalancingFreq       string                 `protobuf:"bytes,24,opt,name=rebalancing_freq,json=rebalancingFreq,proto3" json:"rebalancing_freq,omitempty"`
	TradingStatus         SecurityTradingStatus  `protobuf:"varint,25,opt,name=trading_status,json=tradingStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SecurityTradingStatus" json:"trading_status,omitempty"`
	OtcFlag               bool                   `protobuf:"varint,26,opt,name=otc_flag,json=otcFlag,proto3" json:"otc_flag,omitempty"`
	BuyAvailableFlag      bool                   `protobuf:"varint,27,opt,name=buy_available_flag,json=buyAvailableFlag,proto3" json:"buy_available_flag,omitempty"`
	SellAvailableFlag     bool                   `protobuf:"varint,28,opt,name=sell_available_flag,json=sellAvailableFlag,proto3" json:"sell_available_flag,omitempty"`
	MinPriceIncrement     *Quotation             `protobuf:"bytes,29,opt,name=min_price_increment,json=minPriceIncrement,proto3" json:"min_price_increment,omitempty"`
	ApiTradeAvailableFlag bool                   `protobuf:"varint,30,opt,name=api_trade_available_flag,json=apiTradeAvailableFlag,proto3" json:"api_trade_available_flag,omitempty"`
	Uid                   string                 `protobuf:"bytes,31,opt,name=uid,proto3" json:"uid,omitempty"`
}

func (m *Etf) Reset()         { *m = Etf{} }
func (m *Etf) String() string { return messageString(m) }
func (*Etf) ProtoMessage()    {}

type EtfsResponse struct {
	Instruments []*Etf `protobuf:"bytes,1,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *EtfsResponse) Reset()         { *m = EtfsResponse{} }
func (m *EtfsResponse) String() string { return messageString(m) }
func (*EtfsResponse) ProtoMessage()    {}

func (m *EtfsResponse) GetInstruments() []*Etf {
	if m != nil {
		return m.Instruments
	}
	return nil
}

// Currency is a currency instrument.
type Currency struct {
	Figi                  string                `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Ticker                string                `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	ClassCode             string                `protobuf:"bytes,3,opt,name=class_code,json=classCode,proto3" json:"class_code,omitempty"`
	Isin                  string                `protobuf:"bytes,4,opt,name=isin,proto3" json:"isin,omitempty"`
	Lot                   int32                 `protobuf:"varint,5,opt,name=lot,proto3" json:"lot,omitempty"`
	Currency              string                `protobuf:"bytes,6,opt,name=currency,proto3" json:"currency,omitempty"`
	ShortEnabledFlag      bool                  `protobuf:"varint,13,opt,name=short_enabled_flag,json=shortEnabledFlag,proto3" json:"short_enabled_flag,omitempty"`
	Name                  string                `protobuf:"bytes,15,opt,name=name,proto3" json:"name,omitempty"`
	Exchange              string                `protobuf:"bytes,16,opt,name=exchange,proto3" json:"exchange,omitempty"`
	Nominal               *MoneyValue           `protobuf:"bytes,17,opt,name=nominal,proto3" json:"nominal,omitempty"`
	CountryOfRisk         string                `protobuf:"bytes,18,opt,name=country_of_risk,json=countryOfRisk,proto3" json:"country_of_risk,omitempty"`
	CountryOfRiskName     string                `protobuf:"bytes,19,opt,name=country_of_risk_name,json=countryOfRiskName,proto3" json:"country_of_risk_name,omitempty"`
	TradingStatus         SecurityTradingStatus `protobuf:"varint,20,opt,name=trading_status,json=tradingStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SecurityTradingStatus" json:"trading_status,omitempty"`
	OtcFlag               bool                  `protobuf:"varint,21,opt,name=otc_flag,json=otcFlag,proto3" json:"otc_flag,omitempty"`
	BuyAvailableFlag      bool                  `protobuf:"varint,22,opt,name=buy_available_flag,json=buyAvailableFlag,proto3" json:"buy_available_flag,omitempty"`
	SellAvailableFlag     bool                  `protobuf:"varint,23,opt,name=sell_available_flag,json=sellAvailableFlag,proto3" json:"sell_available_flag,omitempty"`
	IsoCurrencyName       string                `protobuf:"bytes,24,opt,name=iso_currency_name,json=isoCurrencyName,proto3" json:"iso_currency_name,omitempty"`
	MinPriceIncrement     *Quotation            `protobuf:"bytes,25,opt,name=min_price_increment,json=minPriceIncrement,proto3" json:"min_price_increment,omitempty"`
	ApiTradeAvailableFlag bool                  `protobuf:"varint,26,opt,name=api_trade_available_flag,json=apiTradeAvailableFlag,proto3" json:"api_trade_available_flag,omitempty"`
	Uid                   string                `protobuf:"bytes,27,opt,name=uid,proto3" json:"uid,omitempty"`
}

func (m *Currency) Reset()         { *m = Currency{} }
func (m *Currency) String() string { return messageString(m) }
func (*Currency) ProtoMessage()    {}

type CurrenciesResponse struct {
	Instruments []*Currency `protobuf:"bytes,1,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *CurrenciesResponse) Reset()         { *m = CurrenciesResponse{} }
func (m *CurrenciesResponse) String() string { return messageString(m) }
func (*CurrenciesResponse) ProtoMessage()    {}

func (m *CurrenciesResponse) GetInstruments() []*Currency {
	if m != nil {
		return m.Instruments
	}
	return nil
}

// Future is a futures contract.
type Future struct {
	Figi                  string                 `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Ticker                string                 `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	ClassCode             string                 `protobuf:"bytes,3,opt,name=class_code,json=classCode,proto3" json:"class_code,omitempty"`
	Lot                   int32                  `protobuf:"varint,4,opt,name=lot,proto3" json:"lot,omitempty"`
	Currency              string                 `protobuf:"bytes,5,opt,name=currency,proto3" json:"currency,omitempty"`
	ShortEnabledFlag      bool                   `protobuf:"varint,12,opt,name=short_enabled_flag,json=shortEnabledFlag,proto3" json:"short_enabled_flag,omitempty"`
	Name                  string                 `protobuf:"bytes,13,opt,name=name,proto3" json:"name,omitempty"`
	Exchange              string                 `protobuf:"bytes,14,opt,name=exchange,proto3" json:"exchange,omitempty"`
	FirstTradeDate        *timestamppb.Timestamp `protobuf:"bytes,15,opt,name=first_trade_date,json=firstTradeDate,proto3" json:"first_trade_date,omitempty"`
	LastTradeDate         *timestamppb.Timestamp `protobuf:"bytes,16,opt,name=last_trade_date,json=lastTradeDate,proto3" json:"last_trade_date,omitempty"`
	FuturesType           string                 `protobuf:"bytes,17,opt,name=futures_type,json=futuresType,proto3" json:"futures_type,omitempty"`
	AssetType             string                 `protobuf:"bytes,18,opt,name=asset_type,json=assetType,proto3" json:"asset_type,omitempty"`
	BasicAsset            string                 `protobuf:"bytes,19,opt,name=basic_asset,json=basicAsset,proto3" json:"basic_asset,omitempty"`
	BasicAssetSize        *Quotation             `protobuf:"bytes,20,opt,name=basic_asset_size,json=basicAssetSize,proto3" json:"basic_asset_size,omitempty"`
	CountryOfRisk         string                 `protobuf:"bytes,21,opt,name=country_of_risk,json=countryOfRisk,proto3" json:"country_of_risk,omitempty"`
	CountryOfRiskName     string                 `protobuf:"bytes,22,opt,name=country_of_risk_name,json=countryOfRiskName,proto3" json:"country_of_risk_name,omitempty"`
	Sector                string                 `protobuf:"bytes,23,opt,name=sector,proto3" json:"sector,omitempty"`
	ExpirationDate        *timestamppb.Timestamp `protobuf:"bytes,24,opt,name=expiration_date,json=expirationDate,proto3" json:"expiration_date,omitempty"`
	TradingStatus         SecurityTradingStatus  `protobuf:"varint,25,opt,name=trading_status,json=tradingStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SecurityTradingStatus" json:"trading_status,omitempty"`
	OtcFlag               bool                   `protobuf:"varint,26,opt,name=otc_flag,json=otcFlag,proto3" json:"otc_flag,omitempty"`
	BuyAvailableFlag      bool                   `protobuf:"varint,27,opt,name=buy_available_flag,json=buyAvailableFlag,proto3" json:"buy_available_flag,omitempty"`
	SellAvailableFlag     bool                   `protobuf:"varint,28,opt,name=sell_available_flag,json=sellAvailableFlag,proto3" json:"sell_available_flag,omitempty"`
	MinPriceIncrement     *Quotation             `protobuf:"bytes,29,opt,name=min_price_increment,json=minPriceIncrement,proto3" json:"min_price_increment,omitempty"`
	ApiTradeAvailableFlag bool                   `protobuf:"varint,30,opt,name=api_trade_available_flag,json=apiTradeAvailableFlag,proto3" json:"api_trade_available_flag,omitempty"`
	Uid                   string                 `protobuf:"bytes,31,opt,name=uid,proto3" json:"uid,omitempty"`
}

func (m *Future) Reset()         { *m = Future{} }
func (m *Future) String() string { return messageString(m) }
func (*Future) ProtoMessage()    {}

type FuturesResponse struct {
	Instruments []*Future `protobuf:"bytes,1,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *FuturesResponse) Reset()         { *m = FuturesResponse{} }
func (m *FuturesResponse) String() string { return messageString(m) }
func (*FuturesResponse) ProtoMessage()    {}

func (m *FuturesResponse) GetInstruments() []*Future {
	if m != nil {
		return m.Instruments
	}
	return nil
}

// Instrument is the type-agnostic view returned by GetInstrumentBy.
type Instrument struct {
	Figi                  string                `protobuf:"bytes,1,opt,name=figi,proto3" json:"figi,omitempty"`
	Ticker                string                `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	ClassCode             string                `protobuf:"bytes,3,opt,name=class_code,json=classCode,proto3" json:"class_code,omitempty"`
	Isin                  string                `protobuf:"bytes,4,opt,name=isin,proto3" json:"isin,omitempty"`
	Lot                   int32                 `protobuf:"varint,5,opt,name=lot,proto3" json:"lot,omitempty"`
	Currency              string                `protobuf:"bytes,6,opt,name=currency,proto3" json:"currency,omitempty"`
	ShortEnabledFlag      bool                  `protobuf:"varint,13,opt,name=short_enabled_flag,json=shortEnabledFlag,proto3" json:"short_enabled_flag,omitempty"`
	Name                  string                `protobuf:"bytes,14,opt,name=name,proto3" json:"name,omitempty"`
	Exchange              string                `protobuf:"bytes,15,opt,name=exchange,proto3" json:"exchange,omitempty"`
	CountryOfRisk         string                `protobuf:"bytes,16,opt,name=country_of_risk,json=countryOfRisk,proto3" json:"country_of_risk,omitempty"`
	CountryOfRiskName     string                `protobuf:"bytes,17,opt,name=country_of_risk_name,json=countryOfRiskName,proto3" json:"country_of_risk_name,omitempty"`
	InstrumentType        string                `protobuf:"bytes,18,opt,name=instrument_type,json=instrumentType,proto3" json:"instrument_type,omitempty"`
	TradingStatus         SecurityTradingStatus `protobuf:"varint,19,opt,name=trading_status,json=tradingStatus,proto3,enum=tinkoff.public.invest.api.contract.v1.SecurityTradingStatus" json:"trading_status,omitempty"`
	OtcFlag               bool                  `protobuf:"varint,20,opt,name=otc_flag,json=otcFlag,proto3" json:"otc_flag,omitempty"`
	BuyAvailableFlag      bool                  `protobuf:"varint,21,opt,name=buy_available_flag,json=buyAvailableFlag,proto3" json:"buy_available_flag,omitempty"`
	SellAvailableFlag     bool                  `protobuf:"varint,22,opt,name=sell_available_flag,json=sellAvailableFlag,proto3" json:"sell_available_flag,omitempty"`
	MinPriceIncrement     *Quotation            `protobuf:"bytes,23,opt,name=min_price_increment,json=minPriceIncrement,proto3" json:"min_price_increment,omitempty"`
	ApiTradeAvailableFlag bool                  `protobuf:"varint,24,opt,name=api_trade_available_flag,json=apiTradeAvailableFlag,proto3" json:"api_trade_available_flag,omitempty"`
	Uid                   string                `protobuf:"bytes,25,opt,name=uid,proto3" json:"uid,omitempty"`
}

func (m *Instrument) Reset()         { *m = Instrument{} }
func (m *Instrument) String() string { return messageString(m) }
func (*Instrument) ProtoMessage()    {}

type InstrumentResponse struct {
	Instrument *Instrument `protobuf:"bytes,1,opt,name=instrument,proto3" json:"instrument,omitempty"`
}

func (m *InstrumentResponse) Reset()         { *m = InstrumentResponse{} }
func (m *InstrumentResponse) String() string { return messageString(m) }
func (*InstrumentResponse) ProtoMessage()    {}

func (m *InstrumentResponse) GetInstrument() *Instrument {
	if m != nil {
		return m.Instrument
	}
	return nil
}

type FindInstrumentRequest struct {
	Query                 string         `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	InstrumentKind        InstrumentType `protobuf:"varint,2,opt,name=instrument_kind,json=instrumentKind,proto3,enum=tinkoff.public.invest.api.contract.v1.InstrumentType" json:"instrument_kind,omitempty"`
	ApiTradeAvailableFlag bool           `protobuf:"varint,3,opt,name=api_trade_available_flag,json=apiTradeAvailableFlag,proto3" json:"api_trade_available_flag,omitempty"`
}

func (m *FindInstrumentRequest) Reset()         { *m = FindInstrumentRequest{} }
func (m *FindInstrumentRequest) String() string { return messageString(m) }
func (*FindInstrumentRequest) ProtoMessage()    {}

type FindInstrumentResponse struct {
	Instruments []*InstrumentShort `protobuf:"bytes,1,rep,name=instruments,proto3" json:"instruments,omitempty"`
}

func (m *FindInstrumentResponse) Reset()         { *m = FindInstrumentResponse{} }
func (m *FindInstrumentResponse) String() string { return messageString(m) }
func (*FindInstrumentResponse) ProtoMessage()    {}

func (m *FindInstrumentResponse) GetInstruments() []*InstrumentShort {
	if m != nil {
		return m.Instruments
	}
	return nil
}

// InstrumentShort is the compact search-result record.
type InstrumentShort struct {
	Isin                  string         `protobuf:"bytes,1,opt,name=isin,proto3" json:"isin,omitempty"`
	Figi                  string         `protobuf:"bytes,2,opt,name=figi,proto3" json:"figi,omitempty"`
	Ticker                string         `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
	ClassCode             string         `protobuf:"bytes,4,opt,name=class_code,json=classCode,proto3" json:"class_code,omitempty"`
	InstrumentType        string         `protobuf:"bytes,5,opt,name=instrument_type,json=instrumentType,proto3" json:"instrument_type,omitempty"`
	Name                  string         `protobuf:"bytes,6,opt,name=name,proto3" json:"name,omitempty"`
	Uid                   string         `protobuf:"bytes,7,opt,name=uid,proto3" json:"uid,omitempty"`
	PositionUid           string         `protobuf:"bytes,8,opt,name=position_uid,json=positionUid,proto3" json:"position_uid,omitempty"`
	InstrumentKind        InstrumentType `protobuf:"varint,10,opt,name=instrument_kind,json=instrumentKind,proto3,enum=tinkoff.public.invest.api.contract.v1.InstrumentType" json:"instrument_kind,omitempty"`
	ApiTradeAvailableFlag bool           `protobuf:"varint,11,opt,name=api_trade_available_flag,json=apiTradeAvailableFlag,proto3" json:"api_trade_available_flag,omitempty"`
	ForIisFlag            bool           `protobuf:"varint,12,opt,name=for_iis_flag,json=forIisFlag,proto3" json:"for_iis_flag,omitempty"`
}

func (m *InstrumentShort) Reset()         { *m = InstrumentShort{} }
func (m *InstrumentShort) String() string { return messageString(m) }
func (*InstrumentShort) ProtoMessage()    {}

type TradingSchedulesRequest struct {
	Exchange string                 `protobuf:"bytes,1,opt,name=exchange,proto3" json:"exchange,omitempty"`
	From     *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To       *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
}

func (m *TradingSchedulesRequest) Reset()         { *m = TradingSchedulesRequest{} }
func (m *TradingSchedulesRequest) String() string { return messageString(m) }
func (*TradingSchedulesRequest) ProtoMessage()    {}

type TradingSchedulesResponse struct {
	Exchanges []*TradingSchedule `protobuf:"bytes,1,rep,name=exchanges,proto3" json:"exchanges,omitempty"`
}

func (m *TradingSchedulesResponse) Reset()         { *m = TradingSchedulesResponse{} }
func (m *TradingSchedulesResponse) String() string { return messageString(m) }
func (*TradingSchedulesResponse) ProtoMessage()    {}

func (m *TradingSchedulesResponse) GetExchanges() []*TradingSchedule {
	if m != nil {
		return m.Exchanges
	}
	return nil
}

type TradingSchedule struct {
	Exchange string        `protobuf:"bytes,1,opt,name=exchange,proto3" json:"exchange,omitempty"`
	Days     []*TradingDay `protobuf:"bytes,2,rep,name=days,proto3" json:"days,omitempty"`
}

func (m *TradingSchedule) Reset()         { *m = TradingSchedule{} }
func (m *TradingSchedule) String() string { return messageString(m) }
func (*TradingSchedule) ProtoMessage()    {}

type TradingDay struct {
	Date         *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	IsTradingDay bool                   `protobuf:"varint,2,opt,name=is_trading_day,json=isTradingDay,proto3" json:"is_trading_day,omitempty"`
	StartTime    *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime      *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
}

func (m *TradingDay) Reset()         { *m = TradingDay{} }
func (m *TradingDay) String() string { return messageString(m) }
func (*TradingDay) ProtoMessage()    {}
