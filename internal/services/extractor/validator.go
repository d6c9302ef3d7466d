package extractor

import (
	"encoding/json"
	"fmt"
	"strings"

	"aircon-subsidy-engine/internal/models"
)

// DecodeExtraction validates the shape of a raw extractor payload and
// decodes it into ExtractedUnitInfo. The extractor may wrap its answer
// in markdown code fences, pad it with whitespace, or truncate it;
// fences are stripped before decoding and anything that is not a JSON
// object afterwards is rejected with ErrExtractionFormat. Field-level
// semantics (whether 製造年 actually holds a year) are the numeric
// parser's job, not this function's.
func DecodeExtraction(raw string) (*models.ExtractedUnitInfo, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if text == "" {
		return nil, fmt.Errorf("%w: empty payload", models.ErrExtractionFormat)
	}

	if !strings.HasPrefix(text, "{") {
		return nil, fmt.Errorf("%w: payload is not a JSON object", models.ErrExtractionFormat)
	}

	var info models.ExtractedUnitInfo
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExtractionFormat, err)
	}

	return &info, nil
}
