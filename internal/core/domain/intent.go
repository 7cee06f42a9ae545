package domain

import "github.com/shopspring/decimal"

// Direction is the cash movement described by an intent.
type Direction string

const (
	DirectionPayment Direction = "payment"
	DirectionReceive Direction = "receive"
)

// UnknownCounterparty names the account used when an intent has no counterparty.
const UnknownCounterparty = "نامشخص"

// Intent is a structured financial event produced by the voice or receipt parsers.
type Intent struct {
	Amount       decimal.Decimal
	Direction    Direction
	Counterparty string
	Purpose      string
}
