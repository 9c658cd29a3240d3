package payment

import (
	"math"

	"garagat/models"
)

// InstallmentCount is the number of instalments for method, or 0 for a single charge.
func InstallmentCount(method string) int {
	switch method {
	case models.PaymentMethodTabby:
		return TabbyInstallments
	case models.PaymentMethodTamara:
		return TamaraInstallments
	}
	return 0
}

// InstallmentAmount splits price into n instalments rounded to whole units.
func InstallmentAmount(price float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Round(price / float64(n))
}
