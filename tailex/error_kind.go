package tailex

import "errors"

type ErrorKind uint8

const (
	NoError ErrorKind = iota
	InvalidByte
	UnterminatedString
	UnterminatedBlockComment
	IntegerOverflow

	numErrorKinds
)

var (
	ErrInvalidByte              = errors.New("invalid byte")
	ErrUnterminatedString       = errors.New("unterminated string")
	ErrUnterminatedBlockComment = errors.New("unterminated block comment")
	ErrIntegerOverflow          = errors.New("integer overflow")
)

var errorKindNames = [numErrorKinds]string{
	NoError:                  "NoError",
	InvalidByte:              "InvalidByte",
	UnterminatedString:       "UnterminatedString",
	UnterminatedBlockComment: "UnterminatedBlockComment",
	IntegerOverflow:          "IntegerOverflow",
}

var errorKindErrors = [numErrorKinds]error{
	NoError:                  nil,
	InvalidByte:              ErrInvalidByte,
	UnterminatedString:       ErrUnterminatedString,
	UnterminatedBlockComment: ErrUnterminatedBlockComment,
	IntegerOverflow:          ErrIntegerOverflow,
}

func (e ErrorKind) String() string {
	if e >= numErrorKinds {
		return "ErrorKind(?)"
	}
	return errorKindNames[e]
}

// Err returns the sentinel error matching e, nil for NoError.
func (e ErrorKind) Err() error {
	if e >= numErrorKinds {
		return nil
	}
	return errorKindErrors[e]
}
