package throttle

// Acceptor is the admission check callers hold on to. A true result means
// proceed, false means the caller is throttled.
type Acceptor interface {
	Accept() bool
}

var _ Acceptor = (*Throttle)(nil)
