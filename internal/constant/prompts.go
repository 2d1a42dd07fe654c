package constant

import "fmt"

// SubtopicPrompt asks for a short topic label for a piece of academic
// content.
func SubtopicPrompt(text string) string {
	return fmt.Sprintf(
		"Read the following academic content and suggest the most relevant subtopic "+
			"(like 'Firewall', 'Water Pollution', etc.) in 2-3 words:\n\n%s\n\nSubtopic:",
		text,
	)
}

// AnswerExtractionPrompt asks the model to quote, verbatim, the
// sentence(s) of a note that answer a question. The note text is capped
// upstream; the "Answer not found" contract is what the locator's
// short-circuit sentinel is built on.
func AnswerExtractionPrompt(question, noteText string) string {
	return fmt.Sprintf(`You are reading a note and a past year question. Identify the sentence(s) from the note that best answer the question.

Question:
"%s"

Note:
"""%s"""

Instructions:
- Return ONLY the most relevant sentence(s) from the note that answer the question
- Use the EXACT wording from the note
- Do NOT rephrase or explain
- Do NOT include the question again
- If no relevant answer exists, return "Answer not found"`, question, noteText)
}
