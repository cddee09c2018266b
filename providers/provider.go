package providers

import (
	"context"

	"doi-hand/models"
)

// MetadataProvider ist das Interface, das jeder Metadata-Provider (z.B. Semantic Scholar) implementieren muss.
type MetadataProvider interface {
	// FetchPaper holt die Zitationsmetadaten für eine DOI und gibt die reduzierte Projektion zurück.
	FetchPaper(ctx context.Context, doi string) (*models.PaperMetadata, error)

	// Name gibt den eindeutigen Namen des Providers zurück (z.B. "semanticscholar").
	Name() string
}
