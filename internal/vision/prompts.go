package vision

import "fmt"

// TextPrompt is the instruction for the plain extraction pipeline.
const TextPrompt = `You are an expert in text extraction. Accurately extract all the text and mathematical formulas from this image. Present the formulas in a clear and linearized format. Return only the extracted content, no additional commentary.`

// MarkdownPrompt builds the instruction for the Markdown-first pipeline.
// This prompt is the contract with the model provider: extraction quality
// lives here, not in code.
func MarkdownPrompt(targetLang string) string {
	return fmt.Sprintf(`You are an expert OCR engine. Extract the full content of this image as Markdown, following every rule below:
- Preserve plain text exactly as written, word for word.
- Render every table as a Markdown table.
- Wrap inline mathematics in single dollar signs like $x^2$.
- Wrap block mathematics in double dollar signs, with $$ on its own line before and after the formula.
- Translate extracted English prose into %s. Do not translate the content of tables or figure labels.
- Return only the extracted content. No explanations, notes or commentary.
- Do not emit code fence markers or horizontal rule markers.
- Separate multiple-choice answer options with a double line break. Never use literal break tags.`, languageName(targetLang))
}

func languageName(code string) string {
	switch code {
	case "vi", "":
		return "Vietnamese"
	case "en":
		return "English"
	case "fr":
		return "French"
	case "ja":
		return "Japanese"
	case "zh":
		return "Chinese"
	default:
		return code
	}
}
