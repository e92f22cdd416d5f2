package jwtx

import "errors"

// ErrEncoding reports that assertion claims could not be serialized or
// signed. This is a caller-configuration defect, never a transient
// condition, and is not retried.
var ErrEncoding = errors.New("jwtx: cannot encode assertion")
