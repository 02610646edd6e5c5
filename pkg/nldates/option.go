package nldates

import "nl-dates/pkg/datemath"

// Option customizes a single CalculateDate or ExtractDate call.
type Option func(*options)

type options struct {
	referenceDate *datemath.Date
	client        Client
}

// WithReferenceDate resolves relative phrases against d instead of today.
func WithReferenceDate(d datemath.Date) Option {
	return func(o *options) {
		o.referenceDate = &d
	}
}

// WithClient uses c instead of the default client.
func WithClient(c Client) Option {
	return func(o *options) {
		o.client = c
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
