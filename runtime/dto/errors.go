package dto

import "errors"

// 引擎相关错误
var (
	ErrUnknownEngine = errors.New("unknown engine")
)

// 输入相关错误
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrInvalidRequest = errors.New("invalid request")
	ErrMissingTiles   = errors.New("request has no tiles")
)
