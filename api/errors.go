package api

import "strconv"

// ErrorKind classifies a recoverable failure reported through the table.
type ErrorKind uint8

const (
	// KindInvalidDevice is returned for a device index that does not exist.
	KindInvalidDevice ErrorKind = iota + 1
	// KindUnimplemented is returned by capabilities this board lacks.
	KindUnimplemented
	// KindUnsupportedConfiguration is returned for unusable buffers or
	// settings. Error.Code carries the reason.
	KindUnsupportedConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidDevice:
		return "invalid_device"
	case KindUnimplemented:
		return "unimplemented"
	case KindUnsupportedConfiguration:
		return "unsupported_configuration"
	default:
		return "unknown"
	}
}

// Error is the outcome of a slot that did not succeed. It is a comparable
// value, so errors.Is matches on kind and code.
type Error struct {
	Kind ErrorKind
	Code uint8
}

func (e Error) Error() string {
	if e.Kind == KindUnsupportedConfiguration {
		return "api: " + e.Kind.String() + "(" + strconv.Itoa(int(e.Code)) + ")"
	}
	return "api: " + e.Kind.String()
}

var (
	ErrInvalidDevice = Error{Kind: KindInvalidDevice}
	ErrUnimplemented = Error{Kind: KindUnimplemented}
)

// UnsupportedConfiguration returns the error for an unusable buffer or
// setting, tagged with reason code.
func UnsupportedConfiguration(code uint8) Error {
	return Error{Kind: KindUnsupportedConfiguration, Code: code}
}

// KindOf returns the kind of err, or zero if err is not an Error.
func KindOf(err error) ErrorKind {
	if e, ok := err.(Error); ok {
		return e.Kind
	}
	return 0
}
