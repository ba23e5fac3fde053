package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/hiring-coordinator/internal/schemas"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

// defaultModel is used when no model name is configured.
const defaultModel = "gemini-2.0-flash"

// questionSchemaFile is the JSON Schema the model output must satisfy.
const questionSchemaFile = "schemas/interview_questions.schema.json"

const questionPrompt = `You are an expert interviewer. Generate %d interview questions for a %s interview.
Job description: %s
Candidate profile: %s

Questions must be specific, open-ended, progressive in difficulty, and relevant to the role.
Return a JSON array of objects with fields "text", "category" and "difficulty" (easy|medium|hard).`

// GeminiGenerator produces questions with the Gemini API. Model output is
// validated against the interview questions schema before it is trusted.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	schema string
}

// NewGeminiGenerator creates a Gemini-backed generator. The schema file must
// be resolvable from the working directory.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	schemaPath := schemas.ResolveSchemaPath(questionSchemaFile)
	if schemaPath == "" {
		return nil, fmt.Errorf("schema file not found: %s", questionSchemaFile)
	}
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", schemaPath, err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model, schema: string(schema)}, nil
}

// Generate asks the model for a question set and validates the response
// against the schema before decoding it.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) ([]types.InterviewQuestion, error) {
	count := req.Count
	if count <= 0 {
		count = defaultCount
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	prompt := fmt.Sprintf(questionPrompt, count, req.InterviewType, req.JobDescription, formatProfile(req.CandidateProfile))
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}
	text = cleanJSONBlock(text)

	if err := schemas.ValidateJSONString(g.schema, text); err != nil {
		return nil, fmt.Errorf("model output rejected: %w", err)
	}

	var questions []types.InterviewQuestion
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		return nil, fmt.Errorf("decoding questions: %w", err)
	}
	return questions, nil
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func formatProfile(profile map[string]string) string {
	if len(profile) == 0 {
		return "(none provided)"
	}
	parts := make([]string, 0, len(profile))
	for k, v := range profile {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v))
	}
	return strings.Join(parts, "; ")
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock strips markdown code fences some models wrap JSON in.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
