// internal/app/errors.go
package app

import "errors"

var (
	ErrUnknownSpot       = errors.New("unknown construction spot")
	ErrSpotOccupied      = errors.New("construction spot occupied")
	ErrUnknownTower      = errors.New("unknown tower")
	ErrInsufficientScrap = errors.New("insufficient scrap")
	ErrMaxLevel          = errors.New("tower already at max level")
	ErrSessionOver       = errors.New("session is over")
)
