package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaosshare/internal/validation"
)

func TestShareValidator_ValidateShare(t *testing.T) {
	v := validation.NewShareValidator(256, 30, 365)

	tests := []struct {
		name    string
		mapType string
		params  string
		wantErr error
	}{
		// Valid configurations
		{"lorenz classic", "lorenz", `{"sigma":10,"rho":28,"beta":2.6667}`, nil},
		{"lorenz with initial state", "lorenz", `{"sigma":10,"rho":28,"beta":2.6667,"x0":1,"y0":1,"z0":1,"dt":0.01}`, nil},
		{"rossler", "rossler", `{"a":0.2,"b":0.2,"c":5.7}`, nil},
		{"henon", "henon", `{"a":1.4,"b":0.3}`, nil},
		{"logistic", "logistic", `{"r":3.99,"x0":0.5,"iterations":1000}`, nil},
		{"duffing", "duffing", `{"alpha":-1,"beta":1,"delta":0.3,"gamma":0.5,"omega":1.2}`, nil},
		{"chen", "chen", `{"a":35,"b":3,"c":28}`, nil},
		{"whitespace and exponent", "henon", " {\n \"a\": 1.4e0, \"b\": 3E-1 }", nil},

		// Map type
		{"empty map type", "", `{"r":3}`, validation.ErrMapTypeRequired},
		{"unknown map type", "mandelbrot", `{"r":3}`, validation.ErrUnknownMapType},

		// Shape
		{"empty params", "logistic", ``, validation.ErrParamsRequired},
		{"malformed json", "logistic", `{"r":`, validation.ErrParamsInvalid},
		{"array", "logistic", `[3.9]`, validation.ErrParamsInvalid},
		{"scalar", "logistic", `3.9`, validation.ErrParamsInvalid},
		{"too large", "logistic", `{"r":3.9` + strings.Repeat(" ", 300) + `}`, validation.ErrParamsTooLarge},

		// Parameters
		{"unknown param", "logistic", `{"r":3.9,"k":1}`, validation.ErrUnknownParam},
		{"duplicate param", "logistic", `{"r":3.9,"r":2}`, validation.ErrDuplicateParam},
		{"string value", "logistic", `{"r":"3.9"}`, validation.ErrParamNotNumber},
		{"nested object", "logistic", `{"r":{"v":3.9}}`, validation.ErrParamNotNumber},
		{"null value", "logistic", `{"r":null}`, validation.ErrParamNotNumber},
		{"overflowing number", "lorenz", `{"sigma":1e400,"rho":28,"beta":2}`, validation.ErrParamNotNumber},
		{"below range", "logistic", `{"r":-0.1}`, validation.ErrParamOutOfRange},
		{"above range", "logistic", `{"r":4.01}`, validation.ErrParamOutOfRange},
		{"missing required", "henon", `{"a":1.4}`, validation.ErrMissingParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateShare(tt.mapType, []byte(tt.params))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestShareValidator_ParamErrorNamesKey(t *testing.T) {
	v := validation.NewShareValidator(256, 30, 365)

	_, err := v.ValidateShare("henon", []byte(`{"a":1.4,"c":2}`))
	require.Error(t, err)

	var paramErr *validation.ParamError
	require.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "c", paramErr.Param)
	assert.Equal(t, "unknown parameter: c", err.Error())
}

func TestShareValidator_CanonicalParams(t *testing.T) {
	v := validation.NewShareValidator(256, 30, 365)

	got, err := v.ValidateShare("henon", []byte(" {\n \"b\": 3E-1, \"a\": 1.40e0 }"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1.4,"b":0.3}`, string(got))

	got, err = v.ValidateShare("lorenz", []byte(`{"sigma":10,"rho":28,"beta":2.5,"iterations":5000}`))
	require.NoError(t, err)
	assert.Equal(t, `{"beta":2.5,"iterations":5000,"rho":28,"sigma":10}`, string(got))
}

func TestShareValidator_ResolveTTL(t *testing.T) {
	v := validation.NewShareValidator(256, 30, 365)

	tests := []struct {
		name    string
		days    int
		want    int
		wantErr bool
	}{
		{"zero uses default", 0, 30, false},
		{"one day", 1, 1, false},
		{"max", 365, 365, false},
		{"above max", 366, 0, true},
		{"negative", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ResolveTTL(tt.days)
			if tt.wantErr {
				assert.ErrorIs(t, err, validation.ErrInvalidTTL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapTypes(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"lorenz", "rossler", "chen", "duffing", "henon", "logistic"},
		validation.MapTypes())
}
