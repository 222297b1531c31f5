package validation

type bounds struct {
	Min, Max float64
}

type mapShape struct {
	Required map[string]bounds
	Optional map[string]bounds
}

var (
	initial3D = map[string]bounds{
		"x0":         {-1e3, 1e3},
		"y0":         {-1e3, 1e3},
		"z0":         {-1e3, 1e3},
		"dt":         {1e-5, 0.1},
		"iterations": {1, 1e6},
	}
	initial2D = map[string]bounds{
		"x0":         {-10, 10},
		"y0":         {-10, 10},
		"iterations": {1, 1e6},
	}
)

var mapShapes = map[string]mapShape{
	"lorenz": {
		Required: map[string]bounds{
			"sigma": {0, 100},
			"rho":   {0, 200},
			"beta":  {0, 20},
		},
		Optional: initial3D,
	},
	"rossler": {
		Required: map[string]bounds{
			"a": {-1, 2},
			"b": {-1, 5},
			"c": {0, 50},
		},
		Optional: initial3D,
	},
	"chen": {
		Required: map[string]bounds{
			"a": {0, 100},
			"b": {0, 20},
			"c": {0, 100},
		},
		Optional: initial3D,
	},
	"duffing": {
		Required: map[string]bounds{
			"alpha": {-10, 10},
			"beta":  {-10, 10},
			"delta": {0, 5},
			"gamma": {0, 10},
			"omega": {0, 10},
		},
		Optional: initial3D,
	},
	"henon": {
		Required: map[string]bounds{
			"a": {0, 2},
			"b": {-1, 1},
		},
		Optional: initial2D,
	},
	"logistic": {
		Required: map[string]bounds{
			"r": {0, 4},
		},
		Optional: map[string]bounds{
			"x0":         {0, 1},
			"iterations": {1, 1e6},
		},
	},
}

// MapTypes lists the supported map identifiers.
func MapTypes() []string {
	types := make([]string, 0, len(mapShapes))
	for name := range mapShapes {
		types = append(types, name)
	}
	return types
}
