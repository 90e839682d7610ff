package wordlist

// MaxCount is the hard ceiling on output size regardless of the requested count.
const MaxCount = 99999

// Options controls filtering and sizing. Zero values mean unset.
type Options struct {
	MinLength int  `json:"min_length,omitempty"`
	MaxLength int  `json:"max_length,omitempty"`
	Count     int  `json:"count,omitempty"`
	PINs      bool `json:"pins,omitempty"`
}

// Clamp returns a copy with negative values reset to unset and Count capped
// at MaxCount.
func (o Options) Clamp() Options {
	if o.MinLength < 0 {
		o.MinLength = 0
	}
	if o.MaxLength < 0 {
		o.MaxLength = 0
	}
	if o.Count < 0 {
		o.Count = 0
	}
	if o.Count > MaxCount {
		o.Count = MaxCount
	}
	return o
}
