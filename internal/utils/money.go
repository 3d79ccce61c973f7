package utils

import (
	"fmt"
	"math"
)

// FormatMoney keeps consistent decimal formatting for price fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// DiscountPercent returns the rounded percentage off when promo is an
// actual discount (present and below list price), else 0.
func DiscountPercent(price float64, promo *float64) int {
	if promo == nil || price <= 0 || *promo >= price {
		return 0
	}
	return int(math.Round((price - *promo) / price * 100))
}

// EffectivePrice is the promo price when it undercuts the list price,
// otherwise the list price.
func EffectivePrice(price float64, promo *float64) float64 {
	if promo != nil && *promo < price {
		return *promo
	}
	return price
}
