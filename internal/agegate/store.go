package agegate

import "context"

// DecisionKey is the well-known key the verification decision is stored
// under, in both persistence mechanisms.
const DecisionKey = "age-verified"

// affirmative is the literal marker value meaning "verified".
const affirmative = "true"

// KeyValue is a durable key/value mechanism with no built-in expiry,
// scoped to the current visitor.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ExpiringKeyValue is a time-bounded key/value mechanism. Expiry is measured
// in whole days from the moment of writing; 0 days means session scope per
// the mechanism's native semantics.
type ExpiringKeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, days int) error
}

// DecisionStore persists the verification decision across two independent
// mechanisms for robustness. Either mechanism reporting the affirmative
// marker means the visitor is verified. Both mechanisms are optional and
// best-effort: a missing or failing mechanism never surfaces an error, the
// gate simply degrades to re-prompting.
type DecisionStore struct {
	Durable   KeyValue
	TimeBound ExpiringKeyValue
}

// Verified reports whether either mechanism holds the affirmative marker.
// Read failures on one mechanism fall through to the other.
func (s *DecisionStore) Verified(ctx context.Context) bool {
	if s == nil {
		return false
	}
	if s.Durable != nil {
		if v, err := s.Durable.Get(ctx, DecisionKey); err == nil && v == affirmative {
			return true
		}
	}
	if s.TimeBound != nil {
		if v, err := s.TimeBound.Get(ctx, DecisionKey); err == nil && v == affirmative {
			return true
		}
	}
	return false
}

// MarkVerified writes the affirmative marker to both mechanisms. Writes are
// idempotent and independent: a failure on one never blocks the other, and
// no failure is reported to the caller.
func (s *DecisionStore) MarkVerified(ctx context.Context, days int) {
	if s == nil {
		return
	}
	if s.Durable != nil {
		_ = s.Durable.Set(ctx, DecisionKey, affirmative)
	}
	if s.TimeBound != nil {
		_ = s.TimeBound.Set(ctx, DecisionKey, affirmative, days)
	}
}
