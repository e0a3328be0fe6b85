package analysis

import (
	"encoding/json"

	"github.com/walterBrayan/BackTalentHub/internal/domain/analysis"
)

// ExtractJSON pulls the single top-level JSON object out of a free-form
// model response. The scanner tracks brace depth, string literals and
// escape sequences, so braces inside string values never confuse it.
//
// The call fails when the response contains no object, an unterminated
// object, a block that is not valid JSON, or MORE than one top-level
// object. A response with two blocks is ambiguous and silently picking
// one would hide model misbehavior, so it is rejected instead.
func ExtractJSON(raw string) (analysis.Result, error) {
	var (
		block    string
		found    bool
		depth    int
		start    int
		inString bool
		escaped  bool
	)

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				if found {
					return nil, &analysis.ExtractionError{
						Reason: "response contains more than one top-level JSON object",
						Raw:    raw,
					}
				}
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				block = raw[start : i+1]
				found = true
			}
		}
	}

	if depth != 0 {
		return nil, &analysis.ExtractionError{Reason: "unterminated JSON object", Raw: raw}
	}
	if !found {
		return nil, &analysis.ExtractionError{Reason: "no JSON object in response", Raw: raw}
	}

	var result analysis.Result
	if err := json.Unmarshal([]byte(block), &result); err != nil {
		return nil, &analysis.ExtractionError{Reason: "extracted block is not valid JSON: " + err.Error(), Raw: raw}
	}
	return result, nil
}
