package semanticscholar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"doi-hand/config"
	"doi-hand/models"
	"doi-hand/providers"
)

// paperFields ist der feste Feldsatz, der bei der Graph-API angefragt wird.
const paperFields = "paperId,url,citationCount,influentialCitationCount,openAccessPdf,fieldsOfStudy,journal"

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ErrNotFound signalisiert, dass der Provider die DOI nicht kennt (HTTP 404).
var ErrNotFound = errors.New("paper not found at semantic scholar")

// ProviderError repräsentiert eine nicht erfolgreiche Provider-Antwort.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("semantic scholar request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("semantic scholar request failed with status %d", e.StatusCode)
}

// Fetcher kapselt die Logik für die Semantic Scholar Graph-API.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
	Guard  *providers.RateGuard
}

// NewFetcher erstellt einen neuen Semantic Scholar Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger, guard *providers.RateGuard) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger, Guard: guard}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "semanticscholar"
}

// FetchPaper holt die Zitationsmetadaten für eine DOI. Jeder Aufruf geht
// zuerst durch den RateGuard; ohne API-Key gelten zusätzlich die strengeren
// Limits des Providers selbst.
func (f *Fetcher) FetchPaper(ctx context.Context, doi string) (*models.PaperMetadata, error) {
	if err := f.Guard.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("rate guard: %w", err)
	}

	requestURL := fmt.Sprintf("%s/paper/DOI:%s?fields=%s", f.Config.SemanticScholarBaseURL, doi, paperFields)
	log := f.Logger.With(zap.String("doi", doi))
	log.Debug("Calling Semantic Scholar API", zap.String("url", requestURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	if f.Config.SemanticScholarAPIKey != "" {
		req.Header.Set("x-api-key", f.Config.SemanticScholarAPIKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("semantic scholar request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		log.Debug("DOI not found at Semantic Scholar")
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		log.Warn("Semantic Scholar returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("api_error", apiErr.Error))
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	var paper paperResponse
	if err := json.NewDecoder(resp.Body).Decode(&paper); err != nil {
		return nil, fmt.Errorf("decoding semantic scholar response: %w", err)
	}

	log.Info("Metadata fetched from Semantic Scholar",
		zap.String("paper_id", paper.PaperID),
		zap.Int("citation_count", paper.CitationCount))
	return mapPaperToModel(&paper), nil
}

// mapPaperToModel konvertiert die API-Antwort in unser internes Metadata-Modell.
func mapPaperToModel(paper *paperResponse) *models.PaperMetadata {
	meta := &models.PaperMetadata{
		PaperID:                  paper.PaperID,
		URL:                      paper.URL,
		CitationCount:            paper.CitationCount,
		InfluentialCitationCount: paper.InfluentialCitationCount,
		FieldsOfStudy:            paper.FieldsOfStudy,
	}
	if paper.OpenAccessPDF != nil {
		meta.OpenAccessPDF = &models.OpenAccessPDF{
			URL:     paper.OpenAccessPDF.URL,
			Status:  paper.OpenAccessPDF.Status,
			License: paper.OpenAccessPDF.License,
		}
	}
	if paper.Journal != nil {
		meta.Journal = &models.Journal{
			Name:   paper.Journal.Name,
			Pages:  paper.Journal.Pages,
			Volume: paper.Journal.Volume,
		}
	}
	return meta
}
