package protocol

const (
	// Transport and schema validation.
	ErrProtoBadRequest = "E_PROTO_BAD_REQUEST"

	// Engine layer.
	ErrBadRequest   = "E_BAD_REQUEST"
	ErrInvalidIndex = "E_INVALID_INDEX"
	ErrInternal     = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrProtoBadRequest: {},
	ErrBadRequest:      {},
	ErrInvalidIndex:    {},
	ErrInternal:        {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
