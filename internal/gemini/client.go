package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1/models"
	defaultModel   = "gemini-1.5-flash"
)

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type contentPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Parts []contentPart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// HealthSearch answers a free-text health question through the Gemini chat
// endpoint with the standing health-assistant prompt.
func (c *Client) HealthSearch(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(`You are a helpful health assistant. The user has asked: %q.

Please provide a clear, informative response about their health question. Keep in mind:
- Provide general health information and guidance
- Always recommend consulting healthcare professionals for serious concerns
- Be empathetic and supportive
- Keep responses concise but comprehensive
- Include disclaimers when appropriate

Response:`, query)

	req := generateContentRequest{
		Contents: []content{{Parts: []contentPart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 500,
		},
	}

	return c.generateContent(ctx, req)
}

// AnalyzePDF sends a medical report PDF inline and returns the model's
// summary of key findings, possible issues, and recommendations.
func (c *Client) AnalyzePDF(ctx context.Context, pdfData []byte) (string, error) {
	req := generateContentRequest{
		Contents: []content{{Parts: []contentPart{
			{InlineData: &inlineData{
				MimeType: "application/pdf",
				Data:     base64.StdEncoding.EncodeToString(pdfData),
			}},
			{Text: "Analyze this medical report PDF and summarize key findings, possible issues, and recommendations."},
		}}},
	}

	return c.generateContent(ctx, req)
}

func (c *Client) generateContent(ctx context.Context, payload generateContentRequest) (string, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil || errorResponse.Error.Message == "" {
			return "", fmt.Errorf("Gemini API returned non-200 status code: %d", response.StatusCode)
		}
		return "", fmt.Errorf("Gemini API error: %s", errorResponse.Error.Message)
	}

	var result generateContentResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("invalid response from Gemini API: no candidates returned")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
