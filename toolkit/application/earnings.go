package application

import (
	"math"
	"strings"

	"seokit/toolkit/domain"
)

// CPM padrão quando o campo vem vazio.
const (
	DefaultCPMLow  = 0.25
	DefaultCPMHigh = 4.00
)

// Earnings estima a receita do canal: diária = views/1000 * CPM,
// mensal = diária * 30, anual = diária * 365. Valores em centavos arredondados.
func Earnings(in domain.EarningsInput) (domain.EarningsEstimate, error) {
	const op = "youtube_earnings"

	views, err := ParseNumber(op, "daily_views", in.DailyViews)
	if err != nil {
		return domain.EarningsEstimate{}, err
	}
	low, err := numberOr(op, "cpm_low", in.CPMLow, DefaultCPMLow)
	if err != nil {
		return domain.EarningsEstimate{}, err
	}
	high, err := numberOr(op, "cpm_high", in.CPMHigh, DefaultCPMHigh)
	if err != nil {
		return domain.EarningsEstimate{}, err
	}
	if low > high {
		return domain.EarningsEstimate{}, domain.Invalid(op, "cpm_high", domain.ErrInvalidNumber)
	}

	daily := domain.EarningsRange{Low: views / 1000 * low, High: views / 1000 * high}
	return domain.EarningsEstimate{
		DailyViews: views,
		CPMLow:     low,
		CPMHigh:    high,
		Daily:      roundRange(daily, 1),
		Monthly:    roundRange(daily, 30),
		Yearly:     roundRange(daily, 365),
	}, nil
}

func numberOr(op, field, raw string, def float64) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	return ParseNumber(op, field, raw)
}

func roundRange(r domain.EarningsRange, factor float64) domain.EarningsRange {
	return domain.EarningsRange{
		Low:  math.Round(r.Low*factor*100) / 100,
		High: math.Round(r.High*factor*100) / 100,
	}
}
