package sheet

import (
	"strings"

	"github.com/shopspring/decimal"
)

var amountNoise = strings.NewReplacer(",", "", `"`, "", "'", "", "₹", "", "Rs.", "", "Rs", "", " ", "")

// parseAmount parses a sheet cell such as "1,25,000" or "Rs 450.50".
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(amountNoise.Replace(strings.TrimSpace(s)))
}
