package collector

import "github.com/samuelfneumann/gonuts/potential"

// NullCollector is the do-nothing Collector: every hook is a no-op. It
// is an alias for potential.NullCollector so that callers who only need
// collector.* types do not also need to import potential directly.
type NullCollector = potential.NullCollector
