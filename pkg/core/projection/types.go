// Package projection turns an assumption tree into a ten-year pro-forma:
// per-product cash-flow series, division statements, bank consolidation
// and KPIs. It is a pure function of its input: no I/O, no shared state,
// one full recomputation per call.
package projection

import (
	"bankplan/pkg/core/assumption"
)

// Years mirrors the assumption horizon so callers of this package don't
// need both imports.
const Years = assumption.Years

// Series is one projected quantity, one value per year in chronological
// order. All engine outputs are Series; nothing sub-annual escapes the
// vintage layer.
type Series []float64

// NewSeries returns a zero series of the projection length.
func NewSeries() Series {
	return make(Series, Years)
}

// AddInto accumulates src into s element-wise.
func (s Series) AddInto(src Series) {
	for i := range s {
		s[i] += src[i]
	}
}

// Scaled returns a copy of s multiplied by f.
func (s Series) Scaled(f float64) Series {
	out := NewSeries()
	for i, v := range s {
		out[i] = v * f
	}
	return out
}

// ProductResult is the full time-series output of one product evaluation.
// It is produced whole; a changed assumption regenerates it from scratch.
type ProductResult struct {
	Name string                 `json:"name"`
	Type assumption.ProductType `json:"productType"`

	// Balance sheet
	PerformingAssets    Series `json:"performingAssets"`
	NonPerformingAssets Series `json:"nonPerformingAssets"`
	AvgPerformingAssets Series `json:"avgPerformingAssets"`
	DepositStock        Series `json:"depositStock,omitempty"`

	// P&L
	InterestIncome    Series `json:"interestIncome"`
	InterestExpense   Series `json:"interestExpense"`
	CommissionIncome  Series `json:"commissionIncome"`
	CommissionExpense Series `json:"commissionExpense"`
	OtherIncome       Series `json:"otherIncome,omitempty"` // exit gains, recharge margin
	OperatingCosts    Series `json:"operatingCosts,omitempty"`
	LLP               Series `json:"llp"`
	NetProfit         Series `json:"netProfit"`

	// Capital
	RWA             Series `json:"rwa"`
	AllocatedEquity Series `json:"allocatedEquity"`
	CET1Ratio       Series `json:"cet1Ratio"`
	ROE             Series `json:"roe"`

	// Drivers
	NewVolumes    Series `json:"newVolumes"`
	NumberOfLoans Series `json:"numberOfLoans,omitempty"`
	CustomerBase  Series `json:"customerBase,omitempty"`

	// Modular sub-products (customer-acquisition variant), reported
	// independently but sharing the parent's customer stock.
	Modules []ModuleResult `json:"modules,omitempty"`
}

// ModuleResult is the independent report of one digital sub-product.
type ModuleResult struct {
	Name              string `json:"name"`
	AdoptingCustomers Series `json:"adoptingCustomers"`
	CommissionIncome  Series `json:"commissionIncome"`
	DepositStock      Series `json:"depositStock,omitempty"`
}

// DivisionResult sums the division's product series and carries its
// personnel and capital lines.
type DivisionResult struct {
	Name     string                    `json:"name"`
	Products map[string]*ProductResult `json:"products"`

	PerformingAssets    Series `json:"performingAssets"`
	NonPerformingAssets Series `json:"nonPerformingAssets"`
	DepositStock        Series `json:"depositStock"`

	InterestIncome    Series `json:"interestIncome"`
	InterestExpense   Series `json:"interestExpense"`
	CommissionIncome  Series `json:"commissionIncome"`
	CommissionExpense Series `json:"commissionExpense"`
	OtherIncome       Series `json:"otherIncome"`
	OperatingCosts    Series `json:"operatingCosts"`
	LLP               Series `json:"llp"`
	PersonnelCosts    Series `json:"personnelCosts"`
	Headcount         Series `json:"headcount"`
	NetProfit         Series `json:"netProfit"`

	RWACredit       Series `json:"rwaCredit"`
	TotalRWA        Series `json:"totalRWA"`
	AllocatedEquity Series `json:"allocatedEquity"`
	CET1Ratio       Series `json:"cet1Ratio"`
}

// TreasuryResult is the internal funding counterparty's statement.
type TreasuryResult struct {
	LiquidAssets     Series `json:"liquidAssets"`
	TradingAssets    Series `json:"tradingAssets"`
	FundingGap       Series `json:"fundingGap"`
	InterbankFunding Series `json:"interbankFunding"`

	LiquidityIncome   Series `json:"liquidityIncome"`
	TradingIncome     Series `json:"tradingIncome"`
	FTPNetInterest    Series `json:"ftpNetInterest"`
	InterbankCost     Series `json:"interbankCost"`
	NetInterestResult Series `json:"netInterestResult"`
	PersonnelCosts    Series `json:"personnelCosts"`
	OtherOpex         Series `json:"otherOpex"`

	TotalRWA        Series `json:"totalRWA"`
	AllocatedEquity Series `json:"allocatedEquity"`
	CET1Ratio       Series `json:"cet1Ratio"`
}

// CentralResult is the pure cost center: no revenue, no assets, but a
// reportable capital ratio.
type CentralResult struct {
	Facilities       Series `json:"facilities"`
	ExternalServices Series `json:"externalServices"`
	RegulatoryFees   Series `json:"regulatoryFees"`
	Other            Series `json:"other"`
	PersonnelCosts   Series `json:"personnelCosts"`
	Headcount        Series `json:"headcount"`
	TotalCosts       Series `json:"totalCosts"`

	TotalRWA        Series `json:"totalRWA"`
	AllocatedEquity Series `json:"allocatedEquity"`
	CET1Ratio       Series `json:"cet1Ratio"`
}

// PersonnelResult is the bank-wide staffing roll-up.
type PersonnelResult struct {
	ByDivision     map[string]Series `json:"byDivision"`   // negative cost series
	ByDepartment   map[string]Series `json:"byDepartment"` // central departments
	TotalCosts     Series            `json:"totalCosts"`
	TotalHeadcount Series            `json:"totalHeadcount"`
}

// PnL is the consolidated profit and loss statement.
type PnL struct {
	InterestIncome      Series `json:"interestIncome"`
	InterestExpenses    Series `json:"interestExpenses"`
	NetInterestIncome   Series `json:"netInterestIncome"`
	CommissionIncome    Series `json:"commissionIncome"`
	CommissionExpenses  Series `json:"commissionExpenses"`
	NetCommissionIncome Series `json:"netCommissionIncome"`
	OtherIncome         Series `json:"otherIncome"`
	TotalRevenues       Series `json:"totalRevenues"`
	PersonnelCosts      Series `json:"personnelCosts"`
	OtherOpex           Series `json:"otherOpex"`
	TotalOpex           Series `json:"totalOpex"`
	LLP                 Series `json:"llp"`
	PreTaxProfit        Series `json:"preTaxProfit"`
	Taxes               Series `json:"taxes"`
	NetProfit           Series `json:"netProfit"`
}

// BalanceSheet is the consolidated balance sheet. Liabilities are derived
// from the identity: assets = liabilities + equity in every year.
type BalanceSheet struct {
	PerformingAssets    Series `json:"performingAssets"`
	NonPerformingAssets Series `json:"nonPerformingAssets"`
	LiquidAssets        Series `json:"liquidAssets"`
	TradingAssets       Series `json:"tradingAssets"`
	TotalAssets         Series `json:"totalAssets"`

	CustomerDeposits Series `json:"customerDeposits"`
	SightDeposits    Series `json:"sightDeposits"`
	TermDeposits     Series `json:"termDeposits"`
	GroupFunding     Series `json:"groupFunding"`
	TotalLiabilities Series `json:"totalLiabilities"`
	Equity           Series `json:"equity"`
}

// Capital is the consolidated regulatory capital position.
type Capital struct {
	RWACredit      Series `json:"rwaCredit"`
	RWAOperational Series `json:"rwaOperational"`
	RWAMarket      Series `json:"rwaMarket"`
	TotalRWA       Series `json:"totalRWA"`
}

// KPI carries the derived bank ratios.
type KPI struct {
	ROE            Series `json:"roe"`
	CostIncome     Series `json:"costIncome"`
	CostOfRisk     Series `json:"costOfRisk"` // basis points
	CET1Ratio      Series `json:"cet1Ratio"`
	TotalHeadcount Series `json:"totalHeadcount"`
	NumberOfLoans  Series `json:"numberOfLoans"`
}

// Results is the full output document of one engine invocation.
type Results struct {
	PnL          PnL                        `json:"pnl"`
	BalanceSheet BalanceSheet               `json:"balanceSheet"`
	Capital      Capital                    `json:"capital"`
	KPI          KPI                        `json:"kpi"`
	Divisions    map[string]*DivisionResult `json:"divisions"`
	Treasury     TreasuryResult             `json:"treasury"`
	Central      CentralResult              `json:"central"`
	Personnel    PersonnelResult            `json:"personnel"`
}
