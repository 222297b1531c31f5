package validation

import "errors"

var (
	ErrMapTypeRequired = errors.New("map_type is required")
	ErrUnknownMapType  = errors.New("unknown map type")
	ErrParamsRequired  = errors.New("parameters is required")
	ErrParamsTooLarge  = errors.New("parameters exceed maximum size")
	ErrParamsInvalid   = errors.New("parameters must be a json object")
	ErrUnknownParam    = errors.New("unknown parameter")
	ErrDuplicateParam  = errors.New("duplicate parameter")
	ErrParamNotNumber  = errors.New("parameter must be a finite number")
	ErrParamOutOfRange = errors.New("parameter out of range")
	ErrMissingParam    = errors.New("missing required parameter")
	ErrInvalidTTL      = errors.New("expires_in_days out of range")
)

// ParamError ties a parameter failure to the offending key.
type ParamError struct {
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return e.Err.Error() + ": " + e.Param
}

func (e *ParamError) Unwrap() error {
	return e.Err
}
