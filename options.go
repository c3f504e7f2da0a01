package tiermap

// TableConfig defines configurable Table options.
type TableConfig struct {
	loadFactor   float64
	minIncrement int
	margin       int
	growHook     func(GrowEvent)
}

// WithLoadFactor sets the maximum entries/slots ratio. Insert grows the
// overflow store before the ratio would be exceeded. Values outside (0, 1]
// are ignored and the default of 0.75 is kept.
func WithLoadFactor(loadFactor float64) func(*TableConfig) {
	return func(c *TableConfig) {
		if loadFactor > 0 && loadFactor <= 1 {
			c.loadFactor = loadFactor
		}
	}
}

// WithOverflowGrowth tunes the overflow growth formula
//
//	newSize = max(minIncrement, oldSize*2 + margin)
//
// A non-positive minIncrement or a negative margin leaves the respective
// default in place.
func WithOverflowGrowth(minIncrement, margin int) func(*TableConfig) {
	return func(c *TableConfig) {
		if minIncrement > 0 {
			c.minIncrement = minIncrement
		}
		if margin >= 0 {
			c.margin = margin
		}
	}
}

// WithGrowHook registers fn to be called synchronously after every growth,
// before the triggering Insert returns.
func WithGrowHook(fn func(GrowEvent)) func(*TableConfig) {
	return func(c *TableConfig) {
		c.growHook = fn
	}
}

func defaultConfig() TableConfig {
	return TableConfig{
		loadFactor:   defaultLoadFactor,
		minIncrement: defaultOverflowMinIncrement,
		margin:       defaultOverflowMargin,
	}
}

func newConfig(options []func(*TableConfig)) TableConfig {
	cfg := defaultConfig()
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
