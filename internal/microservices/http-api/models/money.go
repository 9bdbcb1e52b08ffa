package models

import "github.com/shopspring/decimal"

func init() {
	// prices travel as JSON numbers, matching what clients send
	decimal.MarshalJSONWithoutQuotes = true
}
