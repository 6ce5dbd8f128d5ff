package genbank

// DefaultFeatureKey is the feature type whose blocks are parsed.
const DefaultFeatureKey = "CDS"

// Record is one finalized feature. Order is the 1-based position among all
// emitted records and is what neighbor windows are computed on.
type Record struct {
	Order       int
	Gene        string
	Translation string

	// Location is the location text of the feature line (e.g. "complement(10..99)").
	Location string
	// Line is the 1-based input line that opened the feature.
	Line int
}

// Sink receives every record as it is emitted.
type Sink interface {
	Add(Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Record) error

func (f SinkFunc) Add(r Record) error { return f(r) }

type config struct {
	key  string
	sink Sink
}

// Option configures parsing.
type Option func(*config)

// WithFeatureKey selects the feature type to parse (default CDS).
func WithFeatureKey(key string) Option {
	return func(c *config) {
		if key != "" {
			c.key = key
		}
	}
}

// WithSink hands every emitted record to s as well. A Sink error aborts parsing.
func WithSink(s Sink) Option {
	return func(c *config) { c.sink = s }
}

func newConfig(opts []Option) config {
	c := config{key: DefaultFeatureKey}
	for _, o := range opts {
		o(&c)
	}
	return c
}
