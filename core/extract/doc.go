// Package extract locates and validates a single JSON document embedded in
// free-form LLM output. Models wrap their payload in prose, sentinel markers,
// or markdown code fences, so [Extract] walks an ordered chain of strategies
// (markers, fenced code block, brace scan) and stops at the first candidate
// that decodes to a JSON object.
//
// Extraction is a pure function: it never panics on malformed input, never
// mutates its argument, and always returns a [Result] describing which
// strategy succeeded, or why none did. Callers branch on [Result.Succeeded]
// and decide how to degrade (typically by persisting the raw text instead).
//
// Example:
//
//	res := extract.Extract(reply)
//	if !res.Succeeded {
//	    if errors.Is(res.Err, extract.ErrNoCandidate) {
//	        // the model answered in prose only
//	    }
//	    return res.RawSlice
//	}
//	fmt.Println(res.Method, res.Document["patient_information"])
package extract
