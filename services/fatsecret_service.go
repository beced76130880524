package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/models"
)

const searchPageSize = 20

// FatSecretService wraps the FatSecret platform API: OAuth2 bearer auth via
// TokenProvider, form-POST method calls, JSON responses.
type FatSecretService struct {
	apiURL string
	tokens *TokenProvider
	client *http.Client
}

// NewFatSecretService initializes the service from the environment. The URLs
// are overridable so tests can point at local servers.
func NewFatSecretService() *FatSecretService {
	apiURL := os.Getenv("FATSECRET_API_URL")
	if apiURL == "" {
		apiURL = "https://platform.fatsecret.com/rest/server.api"
	}
	tokenURL := os.Getenv("FATSECRET_TOKEN_URL")
	if tokenURL == "" {
		tokenURL = "https://oauth.fatsecret.com/connect/token"
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return &FatSecretService{
		apiURL: apiURL,
		tokens: NewTokenProvider(tokenURL, os.Getenv("FATSECRET_CLIENT_ID"), os.Getenv("FATSECRET_CLIENT_SECRET"), client),
		client: client,
	}
}

func newFatSecretService(apiURL string, tokens *TokenProvider, client *http.Client) *FatSecretService {
	return &FatSecretService{apiURL: apiURL, tokens: tokens, client: client}
}

type searchResponse struct {
	Foods struct {
		Food []struct {
			FoodID      string `json:"food_id"`
			Name        string `json:"food_name"`
			Brand       string `json:"brand_name"`
			Description string `json:"food_description"`
		} `json:"food"`
		PageNumber   string `json:"page_number"`
		TotalResults string `json:"total_results"`
	} `json:"foods"`
}

type foodResponse struct {
	Food struct {
		FoodID      string `json:"food_id"`
		Name        string `json:"food_name"`
		Brand       string `json:"brand_name"`
		Description string `json:"food_description"`
	} `json:"food"`
}

type apiErrorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search returns a page of normalized food entries for the query. Results
// are deduplicated by food ID only; entries sharing a display name but with
// distinct IDs (different brands) stay distinct.
func (s *FatSecretService) Search(ctx context.Context, query string, page int) ([]models.FoodItem, error) {
	if page < 0 {
		page = 0
	}
	body, err := s.call(ctx, url.Values{
		"method":            {"foods.search"},
		"search_expression": {query},
		"page_number":       {strconv.Itoa(page)},
		"max_results":       {strconv.Itoa(searchPageSize)},
		"format":            {"json"},
	})
	if err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	seen := make(map[string]struct{}, len(sr.Foods.Food))
	out := make([]models.FoodItem, 0, len(sr.Foods.Food))
	for _, f := range sr.Foods.Food {
		if _, dup := seen[f.FoodID]; dup {
			continue
		}
		seen[f.FoodID] = struct{}{}
		item := ParseNutritionDescription(f.Description)
		item.FoodID = f.FoodID
		item.Name = f.Name
		item.Brand = f.Brand
		out = append(out, item)
	}
	return out, nil
}

// GetFood returns the normalized entry for a single food ID. An unknown ID
// surfaces as an error from the API's error envelope.
func (s *FatSecretService) GetFood(ctx context.Context, foodID string) (*models.FoodItem, error) {
	body, err := s.call(ctx, url.Values{
		"method":  {"food.get"},
		"food_id": {foodID},
		"format":  {"json"},
	})
	if err != nil {
		return nil, err
	}

	var fr foodResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return nil, fmt.Errorf("failed to parse food response: %w", err)
	}
	if fr.Food.FoodID == "" {
		return nil, fmt.Errorf("food %q not found", foodID)
	}

	item := ParseNutritionDescription(fr.Food.Description)
	item.FoodID = fr.Food.FoodID
	item.Name = fr.Food.Name
	item.Brand = fr.Food.Brand
	return &item, nil
}

func (s *FatSecretService) call(ctx context.Context, form url.Values) ([]byte, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("fatsecret auth: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call FatSecret API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read FatSecret response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fatsecret API error %d: %s", resp.StatusCode, string(body))
	}

	var env apiErrorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		return nil, fmt.Errorf("fatsecret API error %d: %s", env.Error.Code, env.Error.Message)
	}
	return body, nil
}

var (
	servingRe  = regexp.MustCompile(`Per\s+(.+?)\s*-`)
	caloriesRe = regexp.MustCompile(`Calories:\s*([\d.]+)\s*kcal`)
	fatRe      = regexp.MustCompile(`Fat:\s*([\d.]+)\s*g`)
	carbsRe    = regexp.MustCompile(`Carbs:\s*([\d.]+)\s*g`)
	proteinRe  = regexp.MustCompile(`Protein:\s*([\d.]+)\s*g`)
)

// ParseNutritionDescription extracts numeric fields from a description of the
// form "Per 100g - Calories: 165kcal | Fat: 3.60g | Carbs: 0.00g | Protein:
// 31.00g". Fields that do not match default to zero; the serving defaults to
// "100g".
func ParseNutritionDescription(desc string) models.FoodItem {
	item := models.FoodItem{ServingSize: "100g"}
	if m := servingRe.FindStringSubmatch(desc); m != nil {
		item.ServingSize = strings.TrimSpace(m[1])
	}
	if m := caloriesRe.FindStringSubmatch(desc); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			item.Calories = int(math.Round(v))
		}
	}
	item.Fat = parseGrams(fatRe, desc)
	item.Carbs = parseGrams(carbsRe, desc)
	item.Protein = parseGrams(proteinRe, desc)
	return item
}

func parseGrams(re *regexp.Regexp, desc string) float64 {
	m := re.FindStringSubmatch(desc)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatGrams renders a gram value for display, e.g. 3.6 → "3.6g".
func FormatGrams(v float64) string {
	return fmt.Sprintf("%.1fg", v)
}
