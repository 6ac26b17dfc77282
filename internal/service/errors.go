package service

import "errors"

var (
	ErrInvalid = errors.New("invalid")
	ErrScrape  = errors.New("page fetch failed")
)
