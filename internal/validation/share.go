package validation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type ShareValidator struct {
	maxParamsBytes int
	defaultTTLDays int
	maxTTLDays     int
}

func NewShareValidator(maxParamsBytes, defaultTTLDays, maxTTLDays int) *ShareValidator {
	return &ShareValidator{
		maxParamsBytes: maxParamsBytes,
		defaultTTLDays: defaultTTLDays,
		maxTTLDays:     maxTTLDays,
	}
}

// ValidateShare checks that params is a flat JSON object of finite numbers
// matching the parameters the map type accepts, and returns it in canonical
// form: compact, keys sorted, numbers re-encoded.
func (v *ShareValidator) ValidateShare(mapType string, params []byte) ([]byte, error) {
	if strings.TrimSpace(mapType) == "" {
		return nil, ErrMapTypeRequired
	}
	shape, ok := mapShapes[mapType]
	if !ok {
		return nil, ErrUnknownMapType
	}

	if len(params) == 0 {
		return nil, ErrParamsRequired
	}
	if len(params) > v.maxParamsBytes {
		return nil, ErrParamsTooLarge
	}
	if !gjson.ValidBytes(params) {
		return nil, ErrParamsInvalid
	}

	root := gjson.ParseBytes(params)
	if !root.IsObject() {
		return nil, ErrParamsInvalid
	}

	values := make(map[string]float64, len(shape.Required)+len(shape.Optional))
	var err error
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, dup := values[name]; dup {
			err = &ParamError{Param: name, Err: ErrDuplicateParam}
			return false
		}

		b, known := shape.Required[name]
		if !known {
			b, known = shape.Optional[name]
		}
		if !known {
			err = &ParamError{Param: name, Err: ErrUnknownParam}
			return false
		}

		if value.Type != gjson.Number {
			err = &ParamError{Param: name, Err: ErrParamNotNumber}
			return false
		}
		n := value.Float()
		if math.IsInf(n, 0) || math.IsNaN(n) {
			err = &ParamError{Param: name, Err: ErrParamNotNumber}
			return false
		}
		if n < b.Min || n > b.Max {
			err = &ParamError{Param: name, Err: ErrParamOutOfRange}
			return false
		}
		values[name] = n
		return true
	})
	if err != nil {
		return nil, err
	}

	for name := range shape.Required {
		if _, ok := values[name]; !ok {
			return nil, &ParamError{Param: name, Err: ErrMissingParam}
		}
	}
	return canonical(values)
}

func canonical(values map[string]float64) ([]byte, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	out := []byte("{}")
	for _, name := range names {
		var err error
		out, err = sjson.SetBytes(out, name, values[name])
		if err != nil {
			return nil, fmt.Errorf("failed to encode parameter %s: %w", name, err)
		}
	}
	return out, nil
}

// ResolveTTL maps the requested lifetime in days to the one to store.
// Zero selects the default.
func (v *ShareValidator) ResolveTTL(days int) (int, error) {
	if days == 0 {
		return v.defaultTTLDays, nil
	}
	if days < 0 || days > v.maxTTLDays {
		return 0, fmt.Errorf("%w: must be within 1..%d", ErrInvalidTTL, v.maxTTLDays)
	}
	return days, nil
}
