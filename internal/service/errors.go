package service

import "errors"

// Sentinel errors for service layer
var (
	ErrDelivery = errors.New("delivery error")
	ErrStorage  = errors.New("storage error")
)
