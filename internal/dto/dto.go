package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func date(t time.Time) string {
	return t.Format(dateLayout)
}
