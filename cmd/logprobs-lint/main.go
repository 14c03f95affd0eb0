// Command logprobs-lint validates the log-probability payloads of a chat
// completion response body. It accepts either a bare logprobs object or a
// full response with a "choices" array, and reports every violation with
// its exact path.
//
// Exit codes: 0 when every payload is valid, 1 when violations were found,
// 2 on usage or decode failures.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/logprobs"
)

var (
	fileFlag  = pflag.StringP("file", "f", "", "path to a JSON document (reads stdin when omitted)")
	quietFlag = pflag.BoolP("quiet", "q", false, "suppress violation output, rely on the exit code")
	debugFlag = pflag.Bool("debug", false, "log every payload as it is checked")
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "\nValidate logprobs payloads in a chat completion response body.\n\n %s [flags]\n\n", filepath.Base(os.Args[0]))
		pflag.PrintDefaults()
	}
	pflag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	if *quietFlag {
		level = slog.LevelError + 1
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := readInput(*fileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input: %v\n", err)
		os.Exit(2)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "input is not a JSON object: %v\n", err)
		os.Exit(2)
	}

	violations := 0
	for _, p := range collectPayloads(doc) {
		log.Debug("checking payload", "target", p.target)

		if p.attrs == nil {
			violations++
			log.Warn("payload is not an object", "target", p.target)
			continue
		}

		if _, err := logprobs.New(p.attrs); err != nil {
			for _, v := range logprobs.ExtractValidationErrors(err) {
				violations++
				log.Warn("violation", "target", p.target, "path", v.Path, "kind", v.Kind, "reason", v.Message)
			}
		}
	}

	if violations > 0 {
		log.Error("document has invalid logprobs", "violations", violations)
		os.Exit(1)
	}
	log.Info("document is valid")
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

type payload struct {
	target string
	attrs  map[string]any
}

// collectPayloads locates every logprobs object in the document. A document
// with a "choices" array is treated as a full chat completion response and
// each non-null choices[i].logprobs is checked; anything else is treated as
// a bare logprobs object.
func collectPayloads(doc map[string]any) []payload {
	rawChoices, ok := doc["choices"]
	if !ok {
		return []payload{{target: "$", attrs: doc}}
	}

	choices, ok := rawChoices.([]any)
	if !ok {
		return []payload{{target: "choices"}}
	}

	var payloads []payload
	for i, rawChoice := range choices {
		choice, ok := rawChoice.(map[string]any)
		if !ok {
			payloads = append(payloads, payload{target: fmt.Sprintf("choices[%d]", i)})
			continue
		}
		raw, ok := choice["logprobs"]
		if !ok || raw == nil {
			continue
		}
		attrs, _ := raw.(map[string]any)
		payloads = append(payloads, payload{
			target: fmt.Sprintf("choices[%d].logprobs", i),
			attrs:  attrs,
		})
	}
	return payloads
}
