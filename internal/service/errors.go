package service

import "errors"

var (
	ErrMessageRequired = errors.New("message is required")
	ErrMessageNotFound = errors.New("no message found")
	ErrInvalidWaitFlag = errors.New("invalid awaiting_io value")
)
