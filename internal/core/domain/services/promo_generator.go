package services

import (
	"math/rand/v2"
	"strings"

	"dispatch/internal/core/domain/model/loyalty"
)

// promoCodeAlphabet is the character set promo codes are drawn from.
const promoCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PromoCodeGenerator is a domain service that produces candidate loyalty
// promo codes: loyalty.PromoCodeLength characters drawn uniformly from
// uppercase latin letters and digits.
//
// The generator does not guarantee uniqueness across accounts; the caller
// checks each candidate against the codes already in use and asks for
// another one on collision.
type PromoCodeGenerator struct {
	intN func(n int) int
}

// NewPromoCodeGenerator creates a PromoCodeGenerator backed by the default
// random source.
func NewPromoCodeGenerator() PromoCodeGenerator {
	return PromoCodeGenerator{intN: rand.IntN}
}

// NewPromoCodeGeneratorWithRand creates a PromoCodeGenerator with a custom
// random index function. Used in tests to make generation deterministic.
func NewPromoCodeGeneratorWithRand(intN func(n int) int) PromoCodeGenerator {
	return PromoCodeGenerator{intN: intN}
}

// Generate returns a fresh candidate promo code.
func (g PromoCodeGenerator) Generate() string {
	var builder strings.Builder
	builder.Grow(loyalty.PromoCodeLength)
	for range loyalty.PromoCodeLength {
		builder.WriteByte(promoCodeAlphabet[g.intN(len(promoCodeAlphabet))])
	}
	return builder.String()
}
