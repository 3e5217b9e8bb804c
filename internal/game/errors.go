package game

import "errors"

var (
	ErrGameOver     = errors.New("game is over")
	ErrInvalidPile  = errors.New("pile index out of range")
	ErrInvalidCount = errors.New("removal count out of range")
)
