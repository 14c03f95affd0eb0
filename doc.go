// Package logprobs provides validated, immutable value types for the
// token-level log-probability information a language model attaches to a
// chat completion choice: per-token probabilities, each token's top-K
// alternatives, and an optional refusal message.
//
// The package is a pure data-shape validator. It takes an untyped attribute
// map, usually the result of decoding a provider's JSON response body, and
// either returns a strongly-typed LogProbs value or a ValidationErrors
// aggregate describing every violation found, scoped to its exact path.
//
// # Core Concepts
//
// Construction is all-or-nothing and side-effect free. New is the canonical
// fallible entry point; Must is a thin wrapper for call sites that want to
// fail fast:
//
//	lp, err := logprobs.New(attrs)
//	if err != nil {
//		for _, v := range logprobs.ExtractValidationErrors(err) {
//			fmt.Printf("%s: %s (%s)\n", v.Path, v.Message, v.Kind)
//		}
//		return err
//	}
//
//	for _, token := range lp.Content() {
//		fmt.Println(token.Token(), token.LogProb())
//	}
//
// The accepted input shape is:
//
//	{ "content": [ { "token": string, "logprob": number,
//	                 "bytes": [int, ...]?,
//	                 "top_logprobs": [ {"token": string, "logprob": number, "bytes": [int, ...]?}, ... ]? }, ... ]?,
//	  "refusal": string? }
//
// Unrecognized keys are ignored. An empty or nil map is valid and yields an
// empty LogProbs. Integer logprob values are widened to float64 and bytes
// entries accept any integer-valued numeric, so maps produced by
// encoding/json (with or without UseNumber) work unmodified.
//
// # Error Handling
//
// Every violation is collected before returning, so a single call surfaces
// the complete set of problems across all nesting levels. Violations carry
// a path like "content[2].top_logprobs[0].logprob" and one of three kinds:
// a required field is absent or null, a value cannot be coerced to its
// declared type, or a field expected to hold nested entries has the wrong
// shape. ValidationErrors and FieldError both support errors.Is against the
// package sentinels:
//
//	if errors.Is(err, logprobs.ErrTypeMismatch) {
//		// at least one field had the wrong type
//	}
//
// # Concurrency
//
// The package holds no state. Validation is a pure synchronous function and
// constructed values are immutable, so everything here is safe for
// concurrent use without coordination.
package logprobs
