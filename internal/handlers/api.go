package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aircon-subsidy-engine/internal/models"
	"aircon-subsidy-engine/internal/services/accounts"
	"aircon-subsidy-engine/internal/services/catalog"
	"aircon-subsidy-engine/internal/services/database"
	"aircon-subsidy-engine/internal/services/subsidy"
	"aircon-subsidy-engine/internal/utils"
)

// maxUploadBytes caps the nameplate photo upload size.
const maxUploadBytes = 10 << 20 // 10MB

// Extractor reads nameplate fields off an uploaded photo.
type Extractor interface {
	Extract(ctx context.Context, imageJPEG []byte) (*models.ExtractedUnitInfo, error)
}

// AddressLookup resolves a zip code to an address.
type AddressLookup interface {
	Lookup(ctx context.Context, zipCode string) (string, error)
}

// API holds the request handlers shared by both presentation adapters.
// Accounts and Customers are nil in the kiosk adapter, which runs the
// same assessment and quote flow without prefill or persistence.
type API struct {
	Catalog   *catalog.Catalog
	Extractor Extractor
	Postal    AddressLookup
	Accounts  *accounts.Store
	DB        *database.DB
	Customers *database.CustomerRepository

	// Now is the evaluation clock; unit age is recomputed against it on
	// every request.
	Now func() time.Time
}

// Register wires the handlers into the mux. Prefill and persistence
// routes are only registered when their dependencies are present.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", a.Health)
	mux.HandleFunc("/api/assess", a.Assess)
	mux.HandleFunc("/api/quote", a.Quote)
	mux.HandleFunc("/api/address", a.Address)

	if a.Accounts != nil {
		mux.HandleFunc("/api/prefill", a.Prefill)
	}
	if a.Customers != nil {
		mux.HandleFunc("/api/submit", a.Submit)
		mux.HandleFunc("/api/customer", a.Customer)
	}
}

func (a *API) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Health reports service and store status.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "not configured"
	status := "healthy"
	if a.DB != nil {
		if err := a.DB.HealthCheck(r.Context()); err != nil {
			dbStatus = "disconnected"
			status = "degraded"
		} else {
			dbStatus = "connected"
		}
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	WriteJSON(w, code, Response{
		Success: true,
		Data: map[string]interface{}{
			"status":    status,
			"database":  dbStatus,
			"service":   "aircon-subsidy-engine",
			"timestamp": a.now().UTC().Format(time.RFC3339),
		},
	})
}

// AssessmentData is the result of reading one nameplate photo.
type AssessmentData struct {
	Extracted      *models.ExtractedUnitInfo `json:"extracted"`
	Facts          models.ParsedFacts        `json:"facts"`
	AgeYears       int                       `json:"age_years"`
	RoomSizeTatami int                       `json:"room_size_tatami"`
	Notice         string                    `json:"notice"`
	Selection      []models.SelectionItem    `json:"selection"`
}

// Assess accepts a nameplate photo upload, runs extraction and parsing,
// and returns the facts plus the replacement-model selection list.
func (a *API) Assess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "画像のアップロードに失敗しました。",
			Error:   "failed to parse form: " + err.Error(),
		})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "エアコン本体の型番が写った画像をアップロードしてください。",
			Error:   "no image provided",
		})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		WriteJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "JPGまたはPNG形式の画像をアップロードしてください。",
			Error:   "unsupported image type: " + ext,
		})
		return
	}

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Message: "画像の読み込みに失敗しました。",
			Error:   "failed to read upload",
		})
		return
	}

	utils.GetLogger().Info("Assessing nameplate photo",
		zap.String("filename", header.Filename),
		zap.Int64("size_bytes", header.Size),
	)

	info, err := a.Extractor.Extract(r.Context(), imageBytes)
	if err != nil {
		WriteError(w, err)
		return
	}

	data, err := a.buildAssessment(info)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// buildAssessment derives the numeric facts and display values from the
// extracted fields.
func (a *API) buildAssessment(info *models.ExtractedUnitInfo) (*AssessmentData, error) {
	coolingKW, err := utils.ParseLeadingNumber(info.RatedCoolingCapacity)
	if err != nil {
		return nil, fmt.Errorf("rated cooling capacity: %w", err)
	}

	year, err := utils.ParseLeadingInt(info.ManufactureYear)
	if err != nil {
		return nil, fmt.Errorf("manufacture year: %w", err)
	}

	facts := models.ParsedFacts{
		CoolingCapacityKW: coolingKW,
		ManufactureYear:   year,
	}
	age := facts.AgeYears(a.now())

	var notice string
	if age >= 15 {
		notice = fmt.Sprintf("お客様のエアコンは製造から%d年経過しているため、20,000~70,000ポイント付与されます。", age)
	} else {
		notice = fmt.Sprintf("お客様のエアコンは製造から%d年経過しているため、9,000~23,000ポイント付与されます。", age)
	}

	return &AssessmentData{
		Extracted:      info,
		Facts:          facts,
		AgeYears:       age,
		RoomSizeTatami: subsidy.RoomSizeTatami(coolingKW),
		Notice:         notice,
		Selection:      a.selection(),
	}, nil
}

// selection returns the fixed catalog entries annotated with their
// tatami size.
func (a *API) selection() []models.SelectionItem {
	entries := a.Catalog.Entries()
	items := make([]models.SelectionItem, len(entries))
	for i, e := range entries {
		items[i] = models.SelectionItem{
			ModelCode:      e.ModelCode,
			RoomSizeTatami: subsidy.RoomSizeTatami(e.RatedCoolingCapacityKW),
			UnitPrice:      e.UnitPrice,
		}
	}
	return items
}

// QuoteRequest selects a replacement model for a unit of the given
// manufacture year.
type QuoteRequest struct {
	ModelCode       string `json:"model_code"`
	ManufactureYear int    `json:"manufacture_year"`
}

// QuoteData is the priced outcome of a model selection.
type QuoteData struct {
	QuoteID  string        `json:"quote_id"`
	Eligible bool          `json:"eligible"`
	AgeYears int           `json:"age_years"`
	Quote    *models.Quote `json:"quote,omitempty"`
}

// Quote evaluates the subsidy for the selected model and composes the
// out-of-pocket price. A non-eligible unit is a successful response
// with a distinct message, never an error and never a zero subsidy.
func (a *API) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	entry, err := a.Catalog.FindByCode(req.ModelCode)
	if err != nil {
		WriteError(w, err)
		return
	}

	if req.ManufactureYear < 1000 || req.ManufactureYear > 9999 {
		WriteError(w, models.ErrInvalidManufactureYear)
		return
	}

	// Age is recomputed against the wall clock on every evaluation.
	facts := models.ParsedFacts{ManufactureYear: req.ManufactureYear}
	age := facts.AgeYears(a.now())

	result := subsidy.Evaluate(entry.EfficiencyScore, entry.RatedCoolingCapacityKW, age)

	if !result.Eligible {
		WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "申し訳ございません。この組み合わせは補助金の対象外です。",
			Data: QuoteData{
				QuoteID:  uuid.NewString(),
				Eligible: false,
				AgeYears: age,
			},
		})
		return
	}

	quote, err := subsidy.Compose(entry, result)
	if err != nil {
		WriteError(w, err)
		return
	}

	utils.GetLogger().Info("Quote composed",
		zap.String("model_code", quote.ModelCode),
		zap.Int("age_years", age),
		zap.Int("subsidy", quote.Subsidy),
		zap.Int("net_cost", quote.NetCost),
	)

	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: fmt.Sprintf("実質負担額：%s円", utils.FormatNumber(quote.NetCost)),
		Data: QuoteData{
			QuoteID:  uuid.NewString(),
			Eligible: true,
			AgeYears: age,
			Quote:    &quote,
		},
	})
}

// Address resolves a zip code through the postal collaborator.
func (a *API) Address(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	zip := r.URL.Query().Get("zip")
	address, err := a.Postal.Lookup(r.Context(), zip)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]string{"zip_code": zip, "address": address},
	})
}

// Prefill returns the stored contact profile for a username.
func (a *API) Prefill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := r.URL.Query().Get("username")
	account, err := a.Accounts.Lookup(username)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, Response{Success: true, Data: account})
}

// Submit validates and persists a customer record. Validation failures
// and storage outages are surfaced distinctly.
func (a *API) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var record models.CustomerRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		WriteJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	if err := models.ValidateCustomerRecord(&record); err != nil {
		WriteError(w, err)
		return
	}

	id, err := a.Customers.Add(r.Context(), &record)
	if err != nil {
		// Storage outage, not an input problem.
		utils.GetLogger().Error("Failed to persist customer record", zap.Error(err))
		WriteJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Message: "お客さま情報の保存に失敗しました。入力内容に問題はありません。時間をおいて再度お試しください。",
			Error:   err.Error(),
		})
		return
	}

	utils.GetLogger().Info("Customer record stored", zap.Int64("id", id))

	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "お客さま情報を受け付けました。",
		Data:    map[string]int64{"id": id},
	})
}

// Customer returns the first stored record for an email, for repeat
// visits.
func (a *API) Customer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "email query parameter is required",
		})
		return
	}

	record, err := a.Customers.FindByEmail(r.Context(), email)
	if err != nil {
		utils.GetLogger().Error("Failed to look up customer record", zap.Error(err))
		WriteJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Message: "お客さま情報の取得に失敗しました。",
			Error:   err.Error(),
		})
		return
	}

	if record == nil {
		WriteJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "no customer record for email",
		})
		return
	}

	WriteJSON(w, http.StatusOK, Response{Success: true, Data: record})
}
