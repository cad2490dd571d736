package output

// QueryCache is the read-side cache of server queries. Invalidate marks the
// given keys stale so the next read refetches; unknown keys are ignored,
// which keeps invalidation idempotent and commutative under concurrent
// transition completions.
type QueryCache interface {
	Invalidate(keys ...string)
}
