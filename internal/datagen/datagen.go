// Package datagen produces synthetic training profiles and a card catalog.
package datagen

import (
	"creditAdvisor/domain"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// profileRange bounds every generated field of one category. Upper bounds are
// exclusive, as in rand.IntN.
type profileRange struct {
	incomeLo, incomeHi   float64
	debtLo, debtHi       float64
	historyLo, historyHi int
	cardsLo, cardsHi     int
	loansLo, loansHi     int
	utilLo, utilHi       float64
	onTimeLo, onTimeHi   int
	scoreLo, scoreHi     int
	missedLo, missedHi   int
}

var profileRanges = map[domain.Category]profileRange{
	domain.CategoryExcellent: {150000, 300000, 1000, 3000, 15, 30, 3, 6, 1, 3, 0.1, 0.3, 11, 13, 750, 851, 0, 1},
	domain.CategoryGood:      {80000, 150000, 2000, 4000, 8, 15, 2, 4, 1, 3, 0.2, 0.4, 10, 12, 700, 750, 0, 2},
	domain.CategoryFair:      {50000, 80000, 3000, 5000, 4, 8, 1, 3, 2, 4, 0.4, 0.6, 8, 10, 640, 700, 1, 4},
	domain.CategoryPoor:      {25000, 50000, 4000, 6000, 1, 4, 1, 2, 3, 5, 0.6, 0.9, 6, 8, 550, 640, 3, 7},
}

type Generator struct {
	rnd *rand.Rand
}

// New returns a generator whose output depends only on seed.
func New(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Generator) floatIn(lo, hi float64) float64 {
	return lo + g.rnd.Float64()*(hi-lo)
}

func (g *Generator) intIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.IntN(hi-lo)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// TrainingSet returns perCategory profiles of every category, interleaved
// EXCELLENT, GOOD, FAIR, POOR.
func (g *Generator) TrainingSet(perCategory int) []domain.TrainingExample {
	out := make([]domain.TrainingExample, 0, perCategory*len(domain.Categories))
	for i := 0; i < perCategory; i++ {
		for _, c := range domain.Categories {
			out = append(out, domain.TrainingExample{
				CreditProfile: g.profile(profileRanges[c]),
				Category:      c,
			})
		}
	}
	return out
}

func (g *Generator) profile(r profileRange) domain.CreditProfile {
	return domain.CreditProfile{
		AnnualIncome:        round(g.floatIn(r.incomeLo, r.incomeHi), 2),
		MonthlyDebtPayments: round(g.floatIn(r.debtLo, r.debtHi), 2),
		OldestAccountAge:    g.intIn(r.historyLo, r.historyHi),
		ActiveCreditCards:   g.intIn(r.cardsLo, r.cardsHi),
		TotalLoans:          g.intIn(r.loansLo, r.loansHi),
		CreditUtilization:   round(g.floatIn(r.utilLo, r.utilHi), 3),
		OnTimePayments:      float64(g.intIn(r.onTimeLo, r.onTimeHi)),
		CreditScore:         g.intIn(r.scoreLo, r.scoreHi),
		MissedPayments:      g.intIn(r.missedLo, r.missedHi),
	}
}

var brands = []string{
	"Chase", "American Express", "Capital One", "Citi", "Bank of America",
	"Discover", "Wells Fargo", "Barclays", "HSBC", "U.S. Bank",
}

var cardTypes = []string{
	"Travel Rewards", "Cash Back", "Business", "Student", "Secured",
	"Balance Transfer", "Low Interest", "Premium", "Shopping", "Gas",
}

type cardRange struct {
	feeLo, feeHi         float64
	aprLo, aprHi         float64
	rewardsLo, rewardsHi float64
	limitLo, limitHi     float64
	minIncome            float64
	minHistory           int
	minPaymentRate       float64
	features             []string
	criteria             []string
}

var baseFeatures = []string{"Online Account Management", "Mobile App Access"}

var cardRanges = map[domain.Category]cardRange{
	domain.CategoryExcellent: {
		100, 600, 12, 17, 2, 5, 10000, 25000, 100000, 5, 0.9,
		[]string{"Travel Insurance", "Airport Lounge Access", "Concierge Service", "Extended Warranty", "Purchase Protection"},
		[]string{"Credit Score: 750+", "Annual Income: $100,000+", "Low Debt-to-Income Ratio", "Clean Credit History"},
	},
	domain.CategoryGood: {
		50, 250, 15, 23, 1, 3, 5000, 13000, 50000, 3, 0.8,
		[]string{"Travel Insurance", "Extended Warranty", "Price Protection"},
		[]string{"Credit Score: 700-749", "Annual Income: $50,000+", "Moderate Debt-to-Income Ratio"},
	},
	domain.CategoryFair: {
		25, 125, 20, 30, 0.5, 1.5, 2000, 7000, 30000, 1, 0.7,
		[]string{"Basic Purchase Protection", "Fraud Protection"},
		[]string{"Credit Score: 650-699", "Annual Income: $30,000+", "Stable Employment"},
	},
	domain.CategoryPoor: {
		0, 50, 25, 40, 0, 0.5, 500, 2500, 0, 0, 0,
		[]string{"Basic Fraud Protection", "Credit Building Tools"},
		[]string{"Credit Score: 580-649", "Proof of Income", "No Recent Bankruptcies"},
	},
}

// Cards returns perBrand cards for every brand and category. Ids look like
// "capital-one-good-3".
func (g *Generator) Cards(perBrand int) []domain.CreditCard {
	out := make([]domain.CreditCard, 0, len(brands)*len(domain.Categories)*perBrand)
	for _, brand := range brands {
		slug := strings.ToLower(strings.NewReplacer(" ", "-", ".", "").Replace(brand))
		for _, c := range domain.Categories {
			r := cardRanges[c]
			for i := 0; i < perBrand; i++ {
				features := append(append([]string(nil), baseFeatures...), r.features...)
				out = append(out, domain.CreditCard{
					ID:                  fmt.Sprintf("%s-%s-%d", slug, strings.ToLower(string(c)), i+1),
					Name:                fmt.Sprintf("%s %s Card", brand, cardTypes[i%len(cardTypes)]),
					Brand:               brand,
					Category:            c,
					AnnualFee:           round(g.floatIn(r.feeLo, r.feeHi), 2),
					InterestRate:        round(g.floatIn(r.aprLo, r.aprHi), 2),
					RewardsRate:         round(g.floatIn(r.rewardsLo, r.rewardsHi), 2),
					CreditLimit:         round(g.floatIn(r.limitLo, r.limitHi), 0),
					MinIncome:           r.minIncome,
					MinHistoryYears:     r.minHistory,
					MinPaymentRate:      r.minPaymentRate,
					Features:            features,
					EligibilityCriteria: append([]string(nil), r.criteria...),
				})
			}
		}
	}
	return out
}
