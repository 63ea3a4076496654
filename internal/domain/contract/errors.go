package contract

import "errors"

var (
	ErrContractNotFound   = errors.New("contract not found")
	ErrContractNotActive  = errors.New("contract is not active")
	ErrInvalidContractEnd = errors.New("contract end date must be after start date")
)
