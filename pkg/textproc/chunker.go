package textproc

import "strings"

const fallbackChunkSize = 1000

// ChunkBySentenceCount splits text into chunks of at most maxSentences
// sentences, joined with single spaces. When segmentation yields nothing
// usable it falls back to fixed-size character chunks with no overlap.
// Pure and deterministic.
func ChunkBySentenceCount(text string, maxSentences int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if maxSentences <= 0 {
		maxSentences = 5
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return SplitText(text, fallbackChunkSize, 0)
	}

	var chunks []string
	for i := 0; i < len(sentences); i += maxSentences {
		end := i + maxSentences
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, strings.Join(sentences[i:end], " "))
	}
	return chunks
}

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters with an 'overlap' to preserve context at boundaries. Chunk
// boundaries always fall on rune boundaries.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	totalLen := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
