package assumption

// CurrentVersion is bumped whenever the default document shape changes;
// stored documents always adopt the code version on merge.
const CurrentVersion = 4

// ramp builds a linearly interpolated ten-year volume path between a
// year-1 and a year-10 value, the shorthand used throughout the defaults.
func ramp(y1, y10 float64) []float64 {
	v := make([]float64, Years)
	for i := 0; i < Years; i++ {
		v[i] = y1 + (y10-y1)*float64(i)/float64(Years-1)
	}
	return v
}

func flat(x float64) []float64 {
	v := make([]float64, Years)
	for i := range v {
		v[i] = x
	}
	return v
}

// Defaults returns the code-defined assumption document. Stored documents
// are merged over a fresh copy of this tree, so every field a calculation
// reads exists here with a workable value.
func Defaults() *Set {
	return &Set{
		Version: CurrentVersion,
		Macro: Macro{
			TaxRate:               28,
			ReferenceRate:         2.0,
			FixedMargin:           2.0,
			FTPSpread:             1.0,
			DepositRate:           1.5,
			CostGrowthRate:        10,
			CommissionExpenseRate: 5,
			InitialEquity:         200,
			OperationalRWA:        10,
			FundingMix: FundingMix{
				SightDeposits: 40,
				TermDeposits:  40,
				GroupFunding:  20,
			},
			QuarterlyAllocation: [4]float64{25, 25, 25, 25},
		},
		Personnel: Personnel{
			SalaryReview:  2.5,
			TaxMultiplier: 1.4,
		},
		Divisions: map[string]Division{
			"realEstate": {
				Name: "Real Estate Financing",
				Products: map[string]Product{
					"bridgeUnsecured": {
						Name: "Bridge Financing",
						Type: TypeCredit,
						Credit: &CreditParams{
							Volumes:           ramp(100, 650),
							Spread:            6.5,
							Amortization:      AmortBullet,
							Duration:          3,
							DangerRate:        5.0,
							Secured:           true,
							LTV:               75,
							CollateralHaircut: 30,
							RecoveryCosts:     15,
							RWADensity:        100,
							CommissionRate:    1.0,
							AvgLoanSize:       1.0,
						},
					},
					"guaranteedMortgage": {
						Name: "State-Guaranteed Mortgage",
						Type: TypeCredit,
						Credit: &CreditParams{
							Volumes:           ramp(50, 550),
							Spread:            4.5,
							Amortization:      AmortFrench,
							Duration:          5,
							Grace:             1,
							DangerRate:        1.5,
							Secured:           true,
							LTV:               80,
							CollateralHaircut: 20,
							RecoveryCosts:     10,
							RWADensity:        20,
							StateGuarantee:    80,
							CommissionRate:    0.5,
							AvgLoanSize:       0.8,
						},
					},
				},
				Staffing: Staffing{
					HeadcountGrowth: 8,
					Levels: []StaffLevel{
						{Level: "Junior", Count: 12, CostPerHead: 45},
						{Level: "Middle", Count: 10, CostPerHead: 70},
						{Level: "Senior", Count: 6, CostPerHead: 110},
						{Level: "Head", Count: 1, CostPerHead: 180},
					},
				},
			},
			"sme": {
				Name: "SME Financing",
				Products: map[string]Product{
					"workingCapital": {
						Name: "Working Capital Line",
						Type: TypeCredit,
						Credit: &CreditParams{
							Volumes:        ramp(80, 400),
							Spread:         5.0,
							Amortization:   AmortBullet,
							Duration:       2,
							DangerRate:     3.5,
							UTP:            true,
							UnsecuredLGD:   45,
							RWADensity:     85,
							CommissionRate: 0.8,
							AvgLoanSize:    0.5,
						},
					},
					"termLoan": {
						Name: "SME Term Loan",
						Type: TypeCredit,
						Credit: &CreditParams{
							Volumes:        ramp(60, 350),
							Spread:         4.0,
							FixedRate:      true,
							Amortization:   AmortFrench,
							Duration:       7,
							Grace:          2,
							DangerRate:     2.5,
							UnsecuredLGD:   40,
							RWADensity:     75,
							StateGuarantee: 50,
							CommissionRate: 0.6,
							AvgLoanSize:    0.4,
						},
					},
				},
				Staffing: Staffing{
					HeadcountGrowth: 10,
					Levels: []StaffLevel{
						{Level: "Junior", Count: 15, CostPerHead: 42},
						{Level: "Middle", Count: 12, CostPerHead: 65},
						{Level: "Senior", Count: 5, CostPerHead: 105},
						{Level: "Head", Count: 1, CostPerHead: 175},
					},
				},
			},
			"wealth": {
				Name: "Wealth & Asset Management",
				Products: map[string]Product{
					"advisoryMandates": {
						Name: "Advisory Mandates",
						Type: TypeCommission,
						Commission: &CommissionParams{
							Volumes:         ramp(200, 1200),
							CommissionRate:  0.4,
							ManagementRate:  0.8,
							SetupRate:       0.2,
							PerformanceRate: 0.1,
							OperationalRWA:  12,
						},
					},
					"structuredProducts": {
						Name: "Structured Products Desk",
						Type: TypeCommission,
						Commission: &CommissionParams{
							Volumes:        ramp(50, 300),
							CommissionRate: 1.2,
							FeeRate:        0.3,
							OperationalRWA: 15,
						},
					},
				},
				Staffing: Staffing{
					HeadcountGrowth: 6,
					Levels: []StaffLevel{
						{Level: "Junior", Count: 8, CostPerHead: 50},
						{Level: "Middle", Count: 8, CostPerHead: 80},
						{Level: "Senior", Count: 6, CostPerHead: 130},
						{Level: "Head", Count: 1, CostPerHead: 200},
					},
				},
			},
			"digital": {
				Name: "Digital Banking",
				Products: map[string]Product{
					"retailDeposits": {
						Name: "Retail Deposit Account",
						Type: TypeDeposit,
						Deposit: &DepositParams{
							Inflows:        ramp(50, 400),
							RetentionRate:  90,
							OperationalRWA: 2,
						},
					},
					"digitalCustomers": {
						Name: "Digital Customer Base",
						Type: TypeDigital,
						Digital: &DigitalParams{
							NewCustomers:   ramp(20000, 120000),
							ChurnRate:      5,
							MonthlyFee:     3,
							ServiceRevenue: 25,
							CAC:            60,
							AvgDeposit:     8000,
							OperationalRWA: 2,
							Modules: []DigitalModule{
								{Name: "Savings Module", AdoptionRate: 35, AnnualRevenue: 12, ExtraDeposit: 5000},
								{Name: "Premium Module", AdoptionRate: 15, AnnualRevenue: 90},
								{Name: "Wealth Referral", AdoptionRate: 4, AnnualRevenue: 150},
							},
						},
					},
					"premiumCards": {
						Name: "Premium Card Program",
						Type: TypeDigital,
						Digital: &DigitalParams{
							BaseProduct:    "digitalCustomers",
							AdoptionRate:   12,
							ChurnRate:      8,
							MonthlyFee:     9,
							ServiceRevenue: 40,
							CAC:            25,
						},
					},
				},
				Staffing: Staffing{
					HeadcountGrowth: 15,
					Levels: []StaffLevel{
						{Level: "Junior", Count: 20, CostPerHead: 40},
						{Level: "Middle", Count: 10, CostPerHead: 62},
						{Level: "Senior", Count: 4, CostPerHead: 100},
						{Level: "Head", Count: 1, CostPerHead: 170},
					},
				},
			},
			"subsidized": {
				Name: "Subsidized Finance",
				Products: map[string]Product{
					"incentiveLoans": {
						Name: "Incentive-Backed Loans",
						Type: TypeCredit,
						Credit: &CreditParams{
							Volumes:        ramp(40, 260),
							Spread:         3.0,
							Amortization:   AmortFrench,
							Duration:       6,
							Grace:          1,
							DangerRate:     1.0,
							UnsecuredLGD:   35,
							RWADensity:     30,
							StateGuarantee: 90,
							CommissionRate: 0.4,
							AvgLoanSize:    0.3,
						},
					},
					"grantAdvisory": {
						Name: "Grant Advisory",
						Type: TypeCommission,
						Commission: &CommissionParams{
							Volumes:        ramp(30, 180),
							CommissionRate: 2.0,
							SetupRate:      0.5,
							OperationalRWA: 10,
						},
					},
				},
				Staffing: Staffing{
					HeadcountGrowth: 7,
					Levels: []StaffLevel{
						{Level: "Junior", Count: 6, CostPerHead: 42},
						{Level: "Middle", Count: 5, CostPerHead: 66},
						{Level: "Senior", Count: 3, CostPerHead: 105},
						{Level: "Head", Count: 1, CostPerHead: 170},
					},
				},
			},
			"tech": {
				Name: "Tech Platform",
				Products: map[string]Product{
					"infrastructure": {
						Name: "Infrastructure & Cloud",
						Type: TypeITService,
						ITService: &ITServiceParams{
							Costs:  ramp(8, 45),
							Markup: 10,
						},
					},
					"softwareLicenses": {
						Name: "Software & Licenses",
						Type: TypeITService,
						ITService: &ITServiceParams{
							Costs:  ramp(10, 55),
							Markup: 15,
						},
					},
					"legacyDisposal": {
						Name: "Legacy Platform Disposal",
						Type: TypeExit,
						Exit: &ExitParams{
							ExitYear: 6,
							Gain:     25,
						},
					},
				},
				Staffing: Staffing{
					HeadcountGrowth: 12,
					Levels: []StaffLevel{
						{Level: "Junior", Count: 18, CostPerHead: 48},
						{Level: "Middle", Count: 14, CostPerHead: 75},
						{Level: "Senior", Count: 6, CostPerHead: 115},
						{Level: "Head", Count: 1, CostPerHead: 185},
					},
				},
			},
		},
		Treasury: Treasury{
			InterbankRate:   3.0,
			LiquidityBuffer: 12,
			LiquidReturn:    2.2,
			TradingBook:     150,
			TradingGrowth:   5,
			TradingReturn:   4.0,
			OtherOpex:       1.5,
			Staffing: Staffing{
				HeadcountGrowth: 4,
				Levels: []StaffLevel{
					{Level: "Junior", Count: 3, CostPerHead: 50},
					{Level: "Middle", Count: 3, CostPerHead: 80},
					{Level: "Senior", Count: 2, CostPerHead: 130},
					{Level: "Head", Count: 1, CostPerHead: 200},
				},
			},
		},
		Central: Central{
			Costs: CentralCosts{
				Facilities:       2.5,
				ExternalServices: 1.5,
				RegulatoryFees:   1.0,
				Other:            0.5,
			},
			Departments: map[string]Staffing{
				"riskAndCompliance": {
					HeadcountGrowth: 5,
					Levels: []StaffLevel{
						{Level: "Junior", Count: 6, CostPerHead: 45},
						{Level: "Middle", Count: 6, CostPerHead: 70},
						{Level: "Senior", Count: 3, CostPerHead: 115},
						{Level: "Head", Count: 1, CostPerHead: 185},
					},
				},
				"financeAndOperations": {
					HeadcountGrowth: 5,
					Levels: []StaffLevel{
						{Level: "Junior", Count: 8, CostPerHead: 42},
						{Level: "Middle", Count: 6, CostPerHead: 66},
						{Level: "Senior", Count: 3, CostPerHead: 110},
						{Level: "Head", Count: 1, CostPerHead: 180},
					},
				},
				"executive": {
					Levels: []StaffLevel{
						{Level: "Senior", Count: 2, CostPerHead: 150},
						{Level: "Head", Count: 3, CostPerHead: 250},
					},
				},
			},
			OperationalRWA: 25,
		},
	}
}
