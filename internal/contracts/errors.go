package contracts

import "errors"

// ErrUnknownStock marks a caller-input validation failure: the stock name
// does not resolve against the current listing.
// 프로바이더 장애와 구분되는 입력 오류
var ErrUnknownStock = errors.New("stock name not found in listing")
