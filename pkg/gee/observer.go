package gee

// SkipReason says why input was dropped in Lenient mode.
type SkipReason string

const (
	SkipStyle   SkipReason = "style"
	SkipContent SkipReason = "content"
)

// Observer receives build events. Implementations must be safe for
// concurrent use if the Builder is shared.
type Observer interface {
	// ElementBuilt is called once per successful build.
	ElementBuilt(tag string, children, captures int)

	// Skipped is called for every item dropped in Lenient mode.
	Skipped(reason SkipReason, detail string)

	// Failed is called when a build returns an error.
	Failed(err error)
}

type nopObserver struct{}

func (nopObserver) ElementBuilt(string, int, int) {}
func (nopObserver) Skipped(SkipReason, string)    {}
func (nopObserver) Failed(error)                  {}

// MultiObserver fans events out to several observers.
func MultiObserver(observers ...Observer) Observer {
	return multiObserver(observers)
}

type multiObserver []Observer

func (m multiObserver) ElementBuilt(tag string, children, captures int) {
	for _, o := range m {
		o.ElementBuilt(tag, children, captures)
	}
}

func (m multiObserver) Skipped(reason SkipReason, detail string) {
	for _, o := range m {
		o.Skipped(reason, detail)
	}
}

func (m multiObserver) Failed(err error) {
	for _, o := range m {
		o.Failed(err)
	}
}
