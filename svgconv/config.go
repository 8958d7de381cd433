package svgconv

// Config holds the recognized, all-positive numeric options governing
// conversion. Zero-value fields are replaced by their defaults in
// DefaultConfig.
type Config struct {
	// Tolerance is the chord tolerance for curve linearization, in SVG
	// user units.
	Tolerance float64
	// ToleranceSVG is the boundary tolerance of the findHoles
	// containment test that decides whether one shape is a hole of
	// another. Convert merges no paths, so it is not used for endpoint
	// coincidence.
	ToleranceSVG float64
	// Scale is the unit scale factor from input SVG units to internal
	// units. Convert does not apply it: coordinates come out in SVG user
	// units.
	Scale float64
	// EndpointTolerance is the tolerance for merging open paths into
	// closed ones.
	EndpointTolerance float64
	// CircleSegments is the minimum segment count for a full-circle
	// approximation.
	CircleSegments int
	// ClipperScale records the integer scale for the Boolean facade.
	// Nothing in this package reads it, and ClipperProvider takes its
	// scale from its own Scale field.
	ClipperScale float64
	// Glyphs resolves text elements to outline paths. A nil value
	// makes text elements degrade to an unsupported-element
	// diagnostic rather than panicking.
	Glyphs GlyphPathProvider
}

// DefaultConfig returns the recognized defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance:         2,
		ToleranceSVG:      0.01,
		Scale:             72,
		EndpointTolerance: 2,
		CircleSegments:    32,
		ClipperScale:      1e7,
	}
}

// withDefaults fills any zero-valued numeric field of cfg from
// DefaultConfig, so callers may supply a partially populated Config.
func (cfg Config) withDefaults() Config {
	d := DefaultConfig()
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = d.Tolerance
	}
	if cfg.ToleranceSVG <= 0 {
		cfg.ToleranceSVG = d.ToleranceSVG
	}
	if cfg.Scale <= 0 {
		cfg.Scale = d.Scale
	}
	if cfg.EndpointTolerance <= 0 {
		cfg.EndpointTolerance = d.EndpointTolerance
	}
	if cfg.CircleSegments <= 0 {
		cfg.CircleSegments = d.CircleSegments
	}
	if cfg.ClipperScale <= 0 {
		cfg.ClipperScale = d.ClipperScale
	}
	return cfg
}
