package mdstyle

import "github.com/iw2rmb/quill/attr"

// Heading is the size scale and weight of one heading level.
type Heading struct {
	Scale  float64
	Weight attr.Weight
}

// Options configures a Styler.
type Options struct {
	// BaseSize is the unscaled body font size. Zero means 14.
	BaseSize float64

	// Headings holds levels 1..6 at indices 0..5. A zero Scale entry takes
	// the default for its level.
	Headings [6]Heading
}

var defaultHeadings = [6]Heading{
	{Scale: 1.6, Weight: attr.WeightBold},
	{Scale: 1.4, Weight: attr.WeightBold},
	{Scale: 1.25, Weight: attr.WeightBold},
	{Scale: 1.1, Weight: attr.WeightBold},
	{Scale: 1.0, Weight: attr.WeightBold},
	{Scale: 1.0, Weight: attr.WeightRegular},
}

func (o Options) withDefaults() Options {
	if o.BaseSize <= 0 {
		o.BaseSize = 14
	}
	for i := range o.Headings {
		if o.Headings[i].Scale <= 0 {
			o.Headings[i] = defaultHeadings[i]
		}
	}
	return o
}
