package logprobs

// LogProbs is the token-level log-probability information attached to a chat
// completion choice: per-token probabilities for the generated content, or a
// refusal message when the model declined to respond instead of emitting
// tokens. Values are constructed only through New or Must and are immutable
// afterwards; callers discard and reconstruct rather than update in place.
type LogProbs struct {
	content []TokenLogProb
	refusal *string
}

// Content returns the per-token log probabilities in token sequence order.
// The returned slice is a copy and can be modified freely.
func (lp LogProbs) Content() []TokenLogProb {
	if lp.content == nil {
		return nil
	}
	out := make([]TokenLogProb, len(lp.content))
	copy(out, lp.content)
	return out
}

// Len returns the number of token entries without copying.
func (lp LogProbs) Len() int { return len(lp.content) }

// Refusal returns the refusal message and whether one is present.
func (lp LogProbs) Refusal() (string, bool) {
	if lp.refusal == nil {
		return "", false
	}
	return *lp.refusal, true
}

// HasRefusal returns true when the model refused to respond.
func (lp LogProbs) HasRefusal() bool { return lp.refusal != nil }

// IsEmpty returns true when there are no token entries and no refusal.
func (lp LogProbs) IsEmpty() bool {
	return len(lp.content) == 0 && lp.refusal == nil
}

// AsMap re-extracts the value as a plain attribute map structurally equal to
// the input it was constructed from. Optional fields absent on construction
// are omitted. The result is accepted by New, so AsMap round-trips.
func (lp LogProbs) AsMap() map[string]any {
	m := make(map[string]any)
	if lp.content != nil {
		entries := make([]any, len(lp.content))
		for i, t := range lp.content {
			entries[i] = t.asMap()
		}
		m["content"] = entries
	}
	if lp.refusal != nil {
		m["refusal"] = *lp.refusal
	}
	return m
}

// TokenLogProb is a single generated token with its log probability, the
// token's UTF-8 byte values, and the model's top-K alternative tokens at the
// same position. A logprob of 0.0 means certainty; the sign is not enforced.
type TokenLogProb struct {
	token       string
	logprob     float64
	bytes       []int
	topLogProbs []TopLogProb
}

// Token returns the literal token text.
func (t TokenLogProb) Token() string { return t.token }

// LogProb returns the token's log probability.
func (t TokenLogProb) LogProb() float64 { return t.logprob }

// Bytes returns the UTF-8 byte values of the token and whether the field was
// present in the input. The returned slice is a copy.
func (t TokenLogProb) Bytes() ([]int, bool) {
	if t.bytes == nil {
		return nil, false
	}
	out := make([]int, len(t.bytes))
	copy(out, t.bytes)
	return out, true
}

// TopLogProbs returns the alternative tokens considered at this position,
// which may include the chosen token itself, and whether the field was
// present in the input. The returned slice is a copy.
func (t TokenLogProb) TopLogProbs() ([]TopLogProb, bool) {
	if t.topLogProbs == nil {
		return nil, false
	}
	out := make([]TopLogProb, len(t.topLogProbs))
	copy(out, t.topLogProbs)
	return out, true
}

func (t TokenLogProb) asMap() map[string]any {
	m := map[string]any{
		"token":   t.token,
		"logprob": t.logprob,
	}
	if t.bytes != nil {
		m["bytes"] = intsToAny(t.bytes)
	}
	if t.topLogProbs != nil {
		alts := make([]any, len(t.topLogProbs))
		for i, alt := range t.topLogProbs {
			alts[i] = alt.asMap()
		}
		m["top_logprobs"] = alts
	}
	return m
}

// TopLogProb is one of the model's top-K alternative tokens at a position.
type TopLogProb struct {
	token   string
	logprob float64
	bytes   []int
}

// Token returns the literal token text.
func (t TopLogProb) Token() string { return t.token }

// LogProb returns the token's log probability.
func (t TopLogProb) LogProb() float64 { return t.logprob }

// Bytes returns the UTF-8 byte values of the token and whether the field was
// present in the input. The returned slice is a copy.
func (t TopLogProb) Bytes() ([]int, bool) {
	if t.bytes == nil {
		return nil, false
	}
	out := make([]int, len(t.bytes))
	copy(out, t.bytes)
	return out, true
}

func (t TopLogProb) asMap() map[string]any {
	m := map[string]any{
		"token":   t.token,
		"logprob": t.logprob,
	}
	if t.bytes != nil {
		m["bytes"] = intsToAny(t.bytes)
	}
	return m
}

func intsToAny(values []int) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
