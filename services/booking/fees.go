package booking

import (
	"math"

	"legalsahyog/config"
)

// DefaultPlatformFeeRate is the commission retained by the platform on every
// booking. Overridable through PLATFORM_FEE_RATE.
const DefaultPlatformFeeRate = 0.15

func platformFeeRate() float64 {
	if rate := config.AppConfig.PlatformFeeRate; rate > 0 {
		return rate
	}
	return DefaultPlatformFeeRate
}

// round2 rounds to two decimals, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// CalculateFees splits a total amount into the platform fee and the provider's
// earnings. Both sides are rounded to two decimals and always sum back to the
// rounded total.
func CalculateFees(totalAmount float64) (platformFee, providerEarnings float64) {
	platformFee = round2(totalAmount * platformFeeRate())
	providerEarnings = round2(totalAmount - platformFee)
	return platformFee, providerEarnings
}
