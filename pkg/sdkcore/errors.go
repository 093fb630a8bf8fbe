package sdkcore

import "errors"

var (
	// ErrDivisionByZero is returned when a zero denominator would be produced.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrCurrencyMismatch is returned for arithmetic between different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrChainMismatch is returned when two currencies live on different chains.
	ErrChainMismatch = errors.New("chain id mismatch")
	// ErrIdenticalAddresses is returned when sorting a token against itself.
	ErrIdenticalAddresses = errors.New("identical token addresses")
	// ErrInvalidAddress is returned for a malformed hex address.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidAmount is returned for an amount string that cannot be represented
	// exactly in the currency's smallest unit.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrAmountOverflow is returned for raw amounts above 2^256-1.
	ErrAmountOverflow = errors.New("amount exceeds uint256")
	// ErrNoWrappedToken is returned when a native currency is used on a chain
	// without a registered wrapped token.
	ErrNoWrappedToken = errors.New("no wrapped token registered for chain")
)
