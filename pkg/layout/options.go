package layout

import "github.com/matzehuels/gridlayout/pkg/diagram"

// Option configures a [Build] call.
type Option func(*options)

type options struct {
	config Config
	ids    diagram.IDSource
}

func defaultOptions() options {
	return options{config: DefaultConfig(), ids: diagram.DefaultIDs}
}

// WithConfig replaces the default geometry. An invalid config is reported
// as a diagnostic and the defaults are used instead.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithIDSource sets the generator of connection and note ids.
// A nil source keeps [diagram.DefaultIDs].
func WithIDSource(ids diagram.IDSource) Option {
	return func(o *options) {
		if ids != nil {
			o.ids = ids
		}
	}
}
