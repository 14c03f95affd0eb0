package logprobs

import "fmt"

// New validates and coerces an untyped attribute map into a LogProbs value.
// It is the canonical fallible entry point: it never panics, collects every
// violation across all nesting levels instead of stopping at the first one,
// and returns them as a single ValidationErrors. Construction is
// all-or-nothing: on any violation the zero LogProbs is returned.
//
// A nil or empty map is valid and yields an empty LogProbs. Unrecognized
// keys are ignored. The input map is never mutated.
func New(attrs map[string]any) (LogProbs, error) {
	var errs ValidationErrors
	var lp LogProbs

	if raw, ok := attrs["content"]; ok && raw != nil {
		entries, ok := asSequence(raw)
		if !ok {
			errs.Add(FieldError{
				Path:    "content",
				Kind:    KindShapeMismatch,
				Message: "must be a sequence of token entries",
			})
		} else {
			lp.content = make([]TokenLogProb, 0, len(entries))
			for i, rawEntry := range entries {
				entry, ok := asAttrMap(rawEntry)
				if !ok {
					errs.Add(FieldError{
						Path:    fmt.Sprintf("content[%d]", i),
						Kind:    KindShapeMismatch,
						Message: "must be a mapping",
					})
					continue
				}
				token, childErrs := newTokenLogProb(entry)
				if !childErrs.IsEmpty() {
					errs = append(errs, prefixPath(childErrs, fmt.Sprintf("content[%d]", i))...)
					continue
				}
				lp.content = append(lp.content, token)
			}
		}
	}

	if raw, ok := attrs["refusal"]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			errs.Add(FieldError{
				Path:    "refusal",
				Kind:    KindTypeMismatch,
				Message: "must be a string",
			})
		} else {
			lp.refusal = &s
		}
	}

	if !errs.IsEmpty() {
		return LogProbs{}, errs
	}
	return lp, nil
}

// Must behaves exactly like New but panics on invalid input, wrapping the
// ValidationErrors so a recovered value still works with errors.Is/As and
// ExtractValidationErrors. For call sites that have already decided a
// malformed payload is unrecoverable.
func Must(attrs map[string]any) LogProbs {
	lp, err := New(attrs)
	if err != nil {
		panic(fmt.Errorf("logprobs: %w", err))
	}
	return lp
}

func newTokenLogProb(entry map[string]any) (TokenLogProb, ValidationErrors) {
	var errs ValidationErrors
	var t TokenLogProb

	t.token = requireString(entry, "token", &errs)
	t.logprob = requireFloat(entry, "logprob", &errs)
	t.bytes = optionalBytes(entry, &errs)

	if raw, ok := entry["top_logprobs"]; ok && raw != nil {
		alts, ok := asSequence(raw)
		if !ok {
			errs.Add(FieldError{
				Path:    "top_logprobs",
				Kind:    KindShapeMismatch,
				Message: "must be a sequence of token entries",
			})
		} else {
			t.topLogProbs = make([]TopLogProb, 0, len(alts))
			for i, rawAlt := range alts {
				alt, ok := asAttrMap(rawAlt)
				if !ok {
					errs.Add(FieldError{
						Path:    fmt.Sprintf("top_logprobs[%d]", i),
						Kind:    KindShapeMismatch,
						Message: "must be a mapping",
					})
					continue
				}
				top, childErrs := newTopLogProb(alt)
				if !childErrs.IsEmpty() {
					errs = append(errs, prefixPath(childErrs, fmt.Sprintf("top_logprobs[%d]", i))...)
					continue
				}
				t.topLogProbs = append(t.topLogProbs, top)
			}
		}
	}

	return t, errs
}

func newTopLogProb(entry map[string]any) (TopLogProb, ValidationErrors) {
	var errs ValidationErrors
	var t TopLogProb

	t.token = requireString(entry, "token", &errs)
	t.logprob = requireFloat(entry, "logprob", &errs)
	t.bytes = optionalBytes(entry, &errs)

	return t, errs
}

func requireString(entry map[string]any, field string, errs *ValidationErrors) string {
	raw, ok := entry[field]
	if !ok || raw == nil {
		errs.Add(FieldError{
			Path:    field,
			Kind:    KindMissingRequiredField,
			Message: "field is required",
		})
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		errs.Add(FieldError{
			Path:    field,
			Kind:    KindTypeMismatch,
			Message: "must be a string",
		})
		return ""
	}
	return s
}

func requireFloat(entry map[string]any, field string, errs *ValidationErrors) float64 {
	raw, ok := entry[field]
	if !ok || raw == nil {
		errs.Add(FieldError{
			Path:    field,
			Kind:    KindMissingRequiredField,
			Message: "field is required",
		})
		return 0
	}
	f, ok := asFloat(raw)
	if !ok {
		errs.Add(FieldError{
			Path:    field,
			Kind:    KindTypeMismatch,
			Message: "must be a number",
		})
		return 0
	}
	return f
}

// optionalBytes coerces the "bytes" field when present. A nil result means
// the field was absent; an empty non-nil slice means it was present and empty.
func optionalBytes(entry map[string]any, errs *ValidationErrors) []int {
	raw, ok := entry["bytes"]
	if !ok || raw == nil {
		return nil
	}
	seq, ok := asSequence(raw)
	if !ok {
		errs.Add(FieldError{
			Path:    "bytes",
			Kind:    KindShapeMismatch,
			Message: "must be a sequence of integers",
		})
		return nil
	}
	out := make([]int, 0, len(seq))
	for i, v := range seq {
		n, ok := asInt(v)
		if !ok {
			errs.Add(FieldError{
				Path:    fmt.Sprintf("bytes[%d]", i),
				Kind:    KindTypeMismatch,
				Message: "must be an integer",
			})
			continue
		}
		out = append(out, n)
	}
	return out
}

// prefixPath rebases child violations onto their position in the parent,
// producing paths like "content[2].top_logprobs[0].logprob".
func prefixPath(errs ValidationErrors, prefix string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for i, err := range errs {
		err.Path = prefix + "." + err.Path
		out[i] = err
	}
	return out
}
