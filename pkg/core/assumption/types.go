// Package assumption defines the editable assumption tree that drives the
// ten-year projection: macro parameters, per-division product entries,
// staffing tables, treasury and central-function settings. The projection
// engine reads this tree and never mutates it.
package assumption

import (
	"fmt"
)

// Years is the fixed projection horizon. Every series produced by the
// engine has exactly this many entries, one per year.
const Years = 10

// =============================================================================
// PRODUCT VARIANTS
// =============================================================================

// ProductType discriminates the product variants. Exactly one of the
// variant-parameter structs on Product is populated for a given type.
type ProductType string

const (
	TypeCredit     ProductType = "Credit"
	TypeCommission ProductType = "Commission"
	TypeDeposit    ProductType = "DepositAndService"
	TypeDigital    ProductType = "DigitalService"
	TypeITService  ProductType = "ITService"
	TypeExit       ProductType = "Exit"
)

// AmortizationType selects the repayment schedule of a credit product.
type AmortizationType string

const (
	AmortBullet AmortizationType = "bullet"
	AmortFrench AmortizationType = "french"
)

// Product is a tagged variant: Type names the kind, and the matching
// parameter struct carries the kind-specific fields. The engine dispatches
// on Type exhaustively; an unknown type is an error, never a silent skip.
type Product struct {
	Name string      `json:"name"`
	Type ProductType `json:"productType"`

	Credit     *CreditParams     `json:"credit,omitempty"`
	Commission *CommissionParams `json:"commission,omitempty"`
	Deposit    *DepositParams    `json:"deposit,omitempty"`
	Digital    *DigitalParams    `json:"digital,omitempty"`
	ITService  *ITServiceParams  `json:"itService,omitempty"`
	Exit       *ExitParams       `json:"exit,omitempty"`
}

// Validate checks that the variant matching Type is present.
func (p *Product) Validate() error {
	switch p.Type {
	case TypeCredit:
		if p.Credit == nil {
			return fmt.Errorf("product %q: missing credit parameters", p.Name)
		}
	case TypeCommission:
		if p.Commission == nil {
			return fmt.Errorf("product %q: missing commission parameters", p.Name)
		}
	case TypeDeposit:
		if p.Deposit == nil {
			return fmt.Errorf("product %q: missing deposit parameters", p.Name)
		}
	case TypeDigital:
		if p.Digital == nil {
			return fmt.Errorf("product %q: missing digital parameters", p.Name)
		}
	case TypeITService:
		if p.ITService == nil {
			return fmt.Errorf("product %q: missing itService parameters", p.Name)
		}
	case TypeExit:
		if p.Exit == nil {
			return fmt.Errorf("product %q: missing exit parameters", p.Name)
		}
	default:
		return fmt.Errorf("product %q: unknown productType %q", p.Name, p.Type)
	}
	return nil
}

// CreditParams drives the vintage-based credit evaluator.
// All rates are percentage points (8.5 means 8.5%).
type CreditParams struct {
	Volumes []float64 `json:"volumes"` // new origination per year, EURm

	Spread       float64          `json:"spread"`       // over reference (floating) or fixed margin (fixed)
	FixedRate    bool             `json:"fixedRate"`    // true: rate = spread + macro fixed margin
	Amortization AmortizationType `json:"amortization"` // bullet | french
	Duration     int              `json:"duration"`     // years
	Grace        int              `json:"grace"`        // interest-only years (french only)

	DangerRate float64 `json:"dangerRate"` // annual default probability
	UTP        bool    `json:"utp"`        // under-the-risk classification

	Secured           bool    `json:"secured"`
	LTV               float64 `json:"ltv"`               // loan-to-value, secured only
	CollateralHaircut float64 `json:"collateralHaircut"` // secured only
	RecoveryCosts     float64 `json:"recoveryCosts"`     // secured only
	UnsecuredLGD      float64 `json:"unsecuredLGD"`      // unsecured only

	RWADensity     float64 `json:"rwaDensity"`
	StateGuarantee float64 `json:"stateGuarantee"` // covered share, 0..100

	CommissionRate float64 `json:"commissionRate"` // upfront, on new volume
	AvgLoanSize    float64 `json:"avgLoanSize"`    // EURm, for loan-count KPI
}

// CommissionParams drives the commission-only evaluator.
type CommissionParams struct {
	Volumes []float64 `json:"volumes"` // new business per year, EURm

	CommissionRate  float64 `json:"commissionRate"`
	FeeRate         float64 `json:"feeRate"`
	SetupRate       float64 `json:"setupRate"`
	ManagementRate  float64 `json:"managementRate"`
	PerformanceRate float64 `json:"performanceRate"`

	OperationalRWA float64 `json:"operationalRWA"` // % of volume
	StateGuarantee float64 `json:"stateGuarantee"`
}

// DepositParams drives the deposit/liability evaluator.
type DepositParams struct {
	Inflows []float64 `json:"inflows"` // new deposit inflow per year, EURm

	RetentionRate  float64 `json:"retentionRate"`  // % of prior stock kept each year
	DepositRate    float64 `json:"depositRate"`    // paid to customers; macro rate when 0
	OperationalRWA float64 `json:"operationalRWA"` // % of stock
}

// DigitalModule is a named sub-product of a customer-acquisition product.
// Modules share the parent's customer stock and report independently.
type DigitalModule struct {
	Name          string  `json:"name"`
	AdoptionRate  float64 `json:"adoptionRate"`  // % of customer stock using the module
	AnnualRevenue float64 `json:"annualRevenue"` // EUR per adopting customer per year
	ExtraDeposit  float64 `json:"extraDeposit"`  // EUR per adopting customer
}

// DigitalParams drives the customer-acquisition evaluator.
// Customer counts are units; per-customer amounts are EUR (converted to
// EURm inside the evaluator).
type DigitalParams struct {
	NewCustomers []float64 `json:"newCustomers"` // acquired per year
	ChurnRate    float64   `json:"churnRate"`    // % of stock lost per year

	MonthlyFee     float64 `json:"monthlyFee"`     // EUR per customer per month
	ServiceRevenue float64 `json:"serviceRevenue"` // EUR per customer per year
	CAC            float64 `json:"cac"`            // EUR per new customer

	AvgDeposit     float64 `json:"avgDeposit"`     // EUR per customer; 0 = no deposit taking
	DepositRate    float64 `json:"depositRate"`    // paid on deposits; macro rate when 0
	OperationalRWA float64 `json:"operationalRWA"` // % of deposit stock

	Modules []DigitalModule `json:"modules,omitempty"`

	// Dependent-product variant: the customer driver is an adoption-rate
	// share of another digital product's customer stock. The base product
	// is always evaluated first.
	BaseProduct  string  `json:"baseProduct,omitempty"`
	AdoptionRate float64 `json:"adoptionRate,omitempty"`
}

// ITServiceParams is a pure internal cost structure recharged to the rest
// of the bank with a markup.
type ITServiceParams struct {
	Costs  []float64 `json:"costs"`  // EURm per year
	Markup float64   `json:"markup"` // % added when recharging internally
}

// ExitParams books a one-off disposal gain in a configured year.
type ExitParams struct {
	ExitYear int     `json:"exitYear"` // 1-based projection year
	Gain     float64 `json:"gain"`     // EURm
}

// =============================================================================
// STAFFING
// =============================================================================

// StaffLevel is one row of a staffing table. CostPerHead is gross annual
// salary in EUR thousands before the company tax multiplier.
type StaffLevel struct {
	Level       string  `json:"level"` // Junior, Middle, Senior, Head
	Count       float64 `json:"count"`
	CostPerHead float64 `json:"costPerHead"`
}

// GrowsWithHeadcount reports whether the level participates in headcount
// growth. Only the two most junior levels grow; senior layers are held
// flat as an explicit staffing policy.
func (l StaffLevel) GrowsWithHeadcount() bool {
	return l.Level == "Junior" || l.Level == "Middle"
}

// Staffing is a division or department staffing table.
type Staffing struct {
	HeadcountGrowth float64      `json:"headcountGrowth"` // % per year, junior levels only
	Levels          []StaffLevel `json:"levels"`
}

// Personnel holds the bank-wide salary parameters.
type Personnel struct {
	SalaryReview  float64 `json:"salaryReview"`  // % per year
	TaxMultiplier float64 `json:"taxMultiplier"` // gross-to-company-cost factor
}

// =============================================================================
// DIVISIONS AND SUPPORT FUNCTIONS
// =============================================================================

// Division groups products with the staffing that serves them.
type Division struct {
	Name     string             `json:"name"`
	Products map[string]Product `json:"products"`
	Staffing Staffing           `json:"staffing"`
}

// Treasury configures the internal funding counterparty.
type Treasury struct {
	InterbankRate   float64  `json:"interbankRate"`   // on positive funding gap
	LiquidityBuffer float64  `json:"liquidityBuffer"` // % of deposits held liquid
	LiquidReturn    float64  `json:"liquidReturn"`    // earned on the buffer
	TradingBook     float64  `json:"tradingBook"`     // year-1 size, EURm
	TradingGrowth   float64  `json:"tradingGrowth"`   // % per year
	TradingReturn   float64  `json:"tradingReturn"`   // target return
	OtherOpex       float64  `json:"otherOpex"`       // year-1 base, EURm
	Staffing        Staffing `json:"staffing"`
}

// CentralCosts are the year-1 bases of the non-personnel central cost
// lines, each grown at the macro cost growth rate.
type CentralCosts struct {
	Facilities       float64 `json:"facilities"`
	ExternalServices float64 `json:"externalServices"`
	RegulatoryFees   float64 `json:"regulatoryFees"`
	Other            float64 `json:"other"`
}

// Central configures the pure cost center.
type Central struct {
	Costs          CentralCosts        `json:"costs"`
	Departments    map[string]Staffing `json:"departments"`
	OperationalRWA float64             `json:"operationalRWA"` // flat, EURm
}

// =============================================================================
// MACRO AND ROOT
// =============================================================================

// FundingMix splits total liabilities across funding sources. The three
// percentages must sum to 100.
type FundingMix struct {
	SightDeposits float64 `json:"sightDeposits"`
	TermDeposits  float64 `json:"termDeposits"`
	GroupFunding  float64 `json:"groupFunding"`
}

// Macro holds the bank-wide parameters. Rates are percentage points.
type Macro struct {
	TaxRate               float64 `json:"taxRate"`
	ReferenceRate         float64 `json:"referenceRate"` // floating-rate basis
	FixedMargin           float64 `json:"fixedMargin"`   // added to spread for fixed-rate products
	FTPSpread             float64 `json:"ftpSpread"`     // over reference for internal funding
	DepositRate           float64 `json:"depositRate"`   // default customer deposit rate
	CostGrowthRate        float64 `json:"costGrowthRate"`
	CommissionExpenseRate float64 `json:"commissionExpenseRate"` // % of commission income

	InitialEquity  float64 `json:"initialEquity"`  // EURm
	OperationalRWA float64 `json:"operationalRWA"` // % of total assets

	FundingMix          FundingMix `json:"fundingMix"`
	QuarterlyAllocation [4]float64 `json:"quarterlyAllocation"` // origination split, sums to 100
}

// FTPRate is the internal funding rate as a decimal.
func (m Macro) FTPRate() float64 {
	return (m.ReferenceRate + m.FTPSpread) / 100
}

// Set is the root of the assumption tree: one self-consistent snapshot per
// engine invocation.
type Set struct {
	Version   int                 `json:"version"`
	Macro     Macro               `json:"macro"`
	Personnel Personnel           `json:"personnel"`
	Divisions map[string]Division `json:"divisions"`
	Treasury  Treasury            `json:"treasury"`
	Central   Central             `json:"central"`
}

// Validate checks the structural invariants a shape-valid document must
// hold: percentage splits that sum to 100 and a matching variant per
// product. Field-level gaps are handled by defaults, not errors.
func (s *Set) Validate() error {
	mixSum := s.Macro.FundingMix.SightDeposits + s.Macro.FundingMix.TermDeposits + s.Macro.FundingMix.GroupFunding
	if diff := mixSum - 100; diff > 0.01 || diff < -0.01 {
		return fmt.Errorf("funding mix sums to %.2f, want 100", mixSum)
	}
	var qSum float64
	for _, q := range s.Macro.QuarterlyAllocation {
		qSum += q
	}
	if diff := qSum - 100; diff > 0.01 || diff < -0.01 {
		return fmt.Errorf("quarterly allocation sums to %.2f, want 100", qSum)
	}
	for dk, div := range s.Divisions {
		for pk := range div.Products {
			p := div.Products[pk]
			if err := p.Validate(); err != nil {
				return fmt.Errorf("division %q: %w", dk, err)
			}
		}
	}
	return nil
}
