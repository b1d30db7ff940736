// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openai

import "regexp"

var (
	// Pattern: after { or , an unquoted key followed by ": indicates a
	// missing opening quote. Example: `, category":` -> `, "category":`
	missingOpenQuote = regexp.MustCompile(`([{,]\s*)([A-Za-z_]+)(":)`)

	// Trailing comma before a closing brace or bracket.
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// repairJSON attempts to fix common JSON formatting issues from LLM
// responses: missing opening quotes before keys and trailing commas.
func repairJSON(s string) string {
	s = missingOpenQuote.ReplaceAllString(s, `$1"$2$3`)
	s = trailingComma.ReplaceAllString(s, `$1`)
	return s
}
