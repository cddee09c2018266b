package models

// PaperMetadata ist die reduzierte Projektion der Provider-Antwort.
// Feldnamen bleiben wie beim Provider, die Antwort wird nur verschlankt.
type PaperMetadata struct {
	PaperID                  string         `json:"paperId"`
	URL                      string         `json:"url"`
	CitationCount            int            `json:"citationCount"`
	InfluentialCitationCount int            `json:"influentialCitationCount"`
	OpenAccessPDF            *OpenAccessPDF `json:"openAccessPdf"`
	FieldsOfStudy            []string       `json:"fieldsOfStudy"`
	Journal                  *Journal       `json:"journal"`
}

// OpenAccessPDF beschreibt einen frei verfügbaren Volltext-Link.
type OpenAccessPDF struct {
	URL     *string `json:"url"`
	Status  *string `json:"status"`
	License *string `json:"license"`
}

// Journal beschreibt das publizierende Journal.
type Journal struct {
	Name   string  `json:"name"`
	Pages  *string `json:"pages,omitempty"`
	Volume *string `json:"volume,omitempty"`
}
