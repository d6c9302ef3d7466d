// Package extractor calls the image understanding collaborator that
// reads nameplate fields off an uploaded photo.
package extractor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"aircon-subsidy-engine/internal/models"
	"aircon-subsidy-engine/internal/utils"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// extractionPrompt is the fixed instruction naming the eight nameplate
// fields. The extractor is expected to answer with a JSON object keyed
// by these names, each value a free-text string including units.
const extractionPrompt = `この画像から、以下の情報を抽出して、JSON形式で出力してください。
抽出する情報:
- 型番
- 製造年
- 定格能力(冷房) (単位も含む)
- 定格能力(暖房標準) (単位も含む)
- 定格能力(暖房低温) (単位も含む)
- 定格消費電力(冷房) (単位も含む)
- 定格消費電力(暖房標準) (単位も含む)
- 定格消費電力(暖房低温) (単位も含む)

出力例:
{
    "型番": "...",
    "製造年": "...",
    "定格能力(冷房)": "...",
    "定格能力(暖房標準)": "...",
    "定格能力(暖房低温)": "...",
    "定格消費電力(冷房)": "...",
    "定格消費電力(暖房標準)": "...",
    "定格消費電力(暖房低温)": "..."
}`

// Client calls the Gemini generateContent API with an image payload.
type Client struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewClient creates an extraction client. The API key is injected here
// rather than read from ambient configuration at call time.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey: apiKey,
		apiURL: fmt.Sprintf("%s/%s:generateContent", geminiBaseURL, model),
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Extract sends the nameplate image to the extractor and decodes the
// answer into structured unit info. The call blocks until the
// collaborator answers, fails, or ctx is done; a misbehaving
// collaborator surfaces as an error and never corrupts local state.
func (c *Client) Extract(ctx context.Context, imageJPEG []byte) (*models.ExtractedUnitInfo, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: extraction API key not configured", models.ErrLookupService)
	}

	requestBody := generateRequest{
		Contents: []content{
			{
				Parts: []part{
					{Text: extractionPrompt},
					{InlineData: &inlineData{
						MimeType: "image/jpeg",
						Data:     base64.StdEncoding.EncodeToString(imageJPEG),
					}},
				},
			},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.1,
			MaxOutputTokens: 500,
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.apiURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(jsonBody)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrLookupService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: extraction API returned status %d", models.ErrLookupService, resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode extraction API response: %v", models.ErrLookupService, err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: extraction API response has no candidates", models.ErrLookupService)
	}

	text := result.Candidates[0].Content.Parts[0].Text

	info, err := DecodeExtraction(text)
	if err != nil {
		utils.GetLogger().Warn("Extractor returned unusable payload",
			zap.String("model", c.model),
			zap.Int("payload_len", len(text)),
			zap.Error(err),
		)
		return nil, err
	}

	return info, nil
}
