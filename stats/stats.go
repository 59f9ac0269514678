package stats

type (
	// Handler collects chain lookup metrics. Implementations must be
	// thread-safe; a Handler may be shared by chains read from concurrent
	// goroutines.
	Handler interface {
		// IncrHit records a lookup answered by some source.
		IncrHit()
		// IncrMiss records a lookup no source answered.
		IncrMiss()
		// IncrProbe records one source consulted during a lookup.
		IncrProbe()
	}

	Handlers struct {
		disable  bool
		handlers []Handler
	}
)

// NewHandles creates a new instance of Handlers.
func NewHandles(disable bool, handlers ...Handler) Handler {
	return &Handlers{
		disable:  disable,
		handlers: handlers,
	}
}

func (hs *Handlers) IncrHit() {
	if hs.disable {
		return
	}

	for _, h := range hs.handlers {
		h.IncrHit()
	}
}

func (hs *Handlers) IncrMiss() {
	if hs.disable {
		return
	}

	for _, h := range hs.handlers {
		h.IncrMiss()
	}
}

func (hs *Handlers) IncrProbe() {
	if hs.disable {
		return
	}

	for _, h := range hs.handlers {
		h.IncrProbe()
	}
}
