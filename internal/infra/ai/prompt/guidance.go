package prompt

import (
	"fmt"

	"github.com/hansol-labs/compliboard/internal/domain/catalog"
)

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are an ISO 27001 lead implementer advising a small engineering team. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- steps is an ordered array of concrete actions a team can execute this week; keep each step one sentence.
- evidence lists the artifacts an auditor would accept for this control.
- effort is one of: hours, days, weeks.
- Write step and evidence text in Korean; keep tool and product names as-is.

Schema (example with empty values):
{
  "control_id": "<string>",
  "steps": ["<string>"],
  "evidence": ["<string>"],
  "effort": "<hours|days|weeks>",
  "advice": "<string>"
}`
}

// GetUserPrompt builds a compact user message around one catalog item.
func GetUserPrompt(item catalog.Item) string {
	return fmt.Sprintf(
		"Control %s (%s): %s\nRequirement: %s\nRespond with the JSON per schema.",
		item.ID, item.TitleKo, item.Title, item.Description,
	)
}
