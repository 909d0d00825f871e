package advisor

import (
	"strings"

	"github.com/prompt508/prompt508/internal/model"
)

// accessibilityInstructions is the fixed authoring block appended to every
// prompt in Stage 1. It states the target grade level, asks for jargon
// avoidance and active voice, and gives explicit do/don't examples.
const accessibilityInstructions = `

IMPORTANT - Accessibility requirements (Section 508 plain language):
- Write at or below an 8th-grade reading level. Prefer short sentences (under 20 words).
- Avoid jargon, buzzwords, and unexplained acronyms. If a technical term is unavoidable, define it in plain words the first time you use it.
- Use active voice. Name who does what.
- Prefer short, common words over long, formal ones.

Examples:
- DO write: "The program checks your text." DON'T write: "Your text is analyzed by the program."
- DO write: "use" DON'T write: "utilize"
- DO write: "The tool finds hard words." DON'T write: "The utility identifies lexically complex terminology."`

// EnhancePromptFor508 appends the fixed accessibility authoring
// instructions to a raw prompt (Stage1_Augment). It is exposed standalone
// for callers that drive the generation call themselves.
func (a *Advisor) EnhancePromptFor508(prompt string) string {
	return prompt + accessibilityInstructions
}

// buildRepairPrompt builds the Stage 2 rewrite prompt. It embeds the
// original output verbatim together with every detected issue and the
// rewrite guidance for that issue kind, so the model knows both what is
// wrong and how to fix it.
func buildRepairPrompt(output string, issues []model.Issue) string {
	var sb strings.Builder

	sb.WriteString("Rewrite the following text so it meets accessibility (Section 508) plain-language standards.\n")
	sb.WriteString("Keep the meaning and all facts. Fix these problems:\n")

	for _, issue := range issues {
		sb.WriteString("- ")
		sb.WriteString(issue.Message)
		if rec := model.GetIssueInfo(issue.Kind).Recommendation; rec != "" {
			sb.WriteString(" (")
			sb.WriteString(rec)
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nReturn only the rewritten text, with no preamble.\n")
	sb.WriteString("\nOriginal text:\n")
	sb.WriteString(output)

	return sb.String()
}
