package apperror

import "errors"

var (
	ErrInvalidBoardSize = errors.New("board size must be a positive integer")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrMalformedMove    = errors.New("malformed move")
	ErrSelfCheckFailed  = errors.New("self-check failed")
	ErrUnknownMode      = errors.New("unknown move source mode")
	ErrUnknownLogLevel  = errors.New("unknown log level")
)
