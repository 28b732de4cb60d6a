package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const summaryPrompt = `You are an expert study assistant. Based on the lecture transcript below, write a DETAILED study summary in the same language as the transcript.

Requirements:
- Start with a one-sentence overview of the topic
- Break the material into sections using markdown "##" headings
- Under each heading, explain the key points in the order they appear
- Keep technical terms exactly as spoken so they can be traced back to the recording
- Use bullet points and bold for important keywords
- End with an "Important notes" section if anything deserves emphasis

Transcript:
---
%s
---`

// Summarize sends the transcript to Gemini and returns the markdown summary.
// Rotates API keys on 429 / quota errors; any other failure is returned to
// the caller untouched.
func (s *implSummarizer) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, text)

	var cfg *genai.GenerateContentConfig
	if opts.MaxTokens > 0 || opts.Temperature > 0 {
		cfg = &genai.GenerateContentConfig{}
		if opts.MaxTokens > 0 {
			cfg.MaxOutputTokens = opts.MaxTokens
		}
		if opts.Temperature > 0 {
			cfg.Temperature = genai.Ptr(opts.Temperature)
		}
	}

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		idx, key := s.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			return out, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}
