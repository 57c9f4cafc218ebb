package domain

import "errors"

var (
	ErrInvalidProfile     = errors.New("invalid credit profile")
	ErrEmptyTrainingSet   = errors.New("training set is empty")
	ErrUnknownCategory    = errors.New("unknown credit category")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrModelNotTrained    = errors.New("prediction model not trained")
)
