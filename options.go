package ggchart

// EnvOption configures an Env during creation.
//
// Example:
//
//	// Pixel output: snap strokes to pixel centers, fills to pixel edges
//	env := ggchart.NewEnv(backend)
//
//	// Vector output: leave coordinates untouched
//	env := ggchart.NewEnv(backend, ggchart.WithVectorAlignment())
type EnvOption func(*envOptions)

// envOptions holds optional configuration for Env creation.
type envOptions struct {
	pointAlign AlignFunc
	coordAlign AlignFunc
}

// defaultEnvOptions returns the default options: bitmap alignment.
func defaultEnvOptions() envOptions {
	point, coord := BitmapAlignment()
	return envOptions{
		pointAlign: point,
		coordAlign: coord,
	}
}

// WithAlignment sets custom alignment functions. point is applied before
// stroking, coord before filling. A nil function means identity.
func WithAlignment(point, coord AlignFunc) EnvOption {
	return func(o *envOptions) {
		if point == nil {
			point = identityAlign
		}
		if coord == nil {
			coord = identityAlign
		}
		o.pointAlign = point
		o.coordAlign = coord
	}
}

// WithBitmapAlignment selects the alignment set for pixel outputs.
// It is the default.
func WithBitmapAlignment() EnvOption {
	return WithAlignment(BitmapAlignment())
}

// WithVectorAlignment selects identity alignment for vector outputs.
func WithVectorAlignment() EnvOption {
	return WithAlignment(VectorAlignment())
}
