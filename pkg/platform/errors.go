package platform

import "errors"

// ErrUnexpectedResult is reported when native code replies to a query with
// a value of the wrong shape.
var ErrUnexpectedResult = errors.New("platform: unexpected result")
