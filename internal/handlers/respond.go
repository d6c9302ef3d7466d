// Package handlers implements the HTTP surface shared by the server and
// kiosk adapters.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"aircon-subsidy-engine/internal/models"
	"aircon-subsidy-engine/internal/services/accounts"
	"aircon-subsidy-engine/internal/utils"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError converts a core error into a user-visible response. All
// recoverable failures end here; nothing terminates the process.
func WriteError(w http.ResponseWriter, err error) {
	status := statusForError(err)

	if status >= http.StatusInternalServerError {
		utils.GetLogger().Error("Request failed", zap.Error(err))
	} else {
		utils.GetLogger().Warn("Request rejected", zap.Error(err))
	}

	WriteJSON(w, status, Response{
		Success: false,
		Message: userMessage(err),
		Error:   err.Error(),
	})
}

// statusForError maps the error taxonomy to HTTP status codes. Storage
// failures deliberately map to 503 so the user is never told their data
// was invalid when the store was down.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrExtractionFormat),
		errors.Is(err, models.ErrNoNumericToken):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrUnknownModel),
		errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrInvalidEmail),
		errors.Is(err, models.ErrInvalidZipCode),
		errors.Is(err, models.ErrInvalidManufactureYear):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrLookupService):
		return http.StatusBadGateway
	case errors.Is(err, accounts.ErrAccountNotFound):
		return http.StatusNotFound
	default:
		return http.StatusServiceUnavailable
	}
}

// userMessage picks the Japanese message shown in the form for each
// error class.
func userMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrExtractionFormat):
		return "抽出結果の解析に失敗しました。別の画像でもう一度お試しください。"
	case errors.Is(err, models.ErrNoNumericToken):
		return "画像から数値を読み取れませんでした。型番プレートが鮮明に写った画像をアップロードしてください。"
	case errors.Is(err, models.ErrUnknownModel):
		return "選択された型番が製品リストに見つかりません。"
	case errors.Is(err, models.ErrLookupService):
		return "外部サービスに接続できませんでした。時間をおいて再度お試しください。"
	case errors.Is(err, models.ErrMissingField):
		return "すべての項目を入力してください。"
	case errors.Is(err, models.ErrInvalidEmail):
		return "メールアドレスの形式が正しくありません。"
	case errors.Is(err, models.ErrInvalidZipCode):
		return "郵便番号は半角数字7桁(ハイフン無)で入力してください。"
	case errors.Is(err, models.ErrInvalidManufactureYear):
		return "製造年の値が正しくありません。"
	case errors.Is(err, accounts.ErrAccountNotFound):
		return "アカウントが見つかりません。"
	default:
		return "システムエラーが発生しました。入力内容に問題はありません。時間をおいて再度お試しください。"
	}
}
