package services

import "github.com/dmitrijs2005/carcare/internal/common"

var (
	ErrNotFound          = common.ErrNotFound
	ErrInvalidFormat     = common.ErrInvalidFormat
	ErrMalformedDocument = common.ErrMalformedDocument
)
