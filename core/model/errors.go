package model

import "errors"

// ErrInvalidVehicleData marks vehicle reference records that would silently
// distort results if used, such as a zero emission factor making a candidate
// look emission-free. Callers must surface it, never default around it.
var ErrInvalidVehicleData = errors.New("invalid vehicle data")
