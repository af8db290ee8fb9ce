// Package theo reads and writes Theo archives: a stamp followed by one
// (record, name, payload) triple per archived file.
//
// Layout, all integers unsigned 32-bit little-endian with no padding:
//
//	Stamp:  0x52 0x84 0x91, files count
//	Entry:  number, size, name length, name bytes, payload bytes
package theo

import (
	"theo/theo/tentry"
	"theo/theo/tstamp"
)

type (
	// Observer is told about every entry right before its payload is
	// written, either into an archive or out of one.
	Observer func(name string, entry tentry.Entry)

	Option func(*config)

	config struct {
		observer Observer
	}
)

func WithObserver(observer Observer) Option {
	return func(cfg *config) {
		cfg.observer = observer
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		observer: func(string, tentry.Entry) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.observer == nil {
		cfg.observer = func(string, tentry.Entry) {}
	}
	return cfg
}

func IsArchive(bs []byte) bool {
	return tstamp.IsValidMagicNumber(bs)
}
