package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrUnavailable = errors.New("service temporarily unavailable")

var ErrToRetrievePathArg = errors.New("error to retrieve path argument")
var ErrFailedToGetUUID = errors.New("failed to get uid from context")
var ErrFailedToGetSession = errors.New("failed to get session from context")

var ErrNoDeviceInfo = errors.New("no device info")
var ErrMissingToken = errors.New("missing access token")
var ErrUnauthorized = errors.New("unauthorized")
