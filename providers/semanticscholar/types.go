package semanticscholar

// paperResponse ist die Top-Level-Struktur der Graph-API-Antwort für ein Paper.
type paperResponse struct {
	PaperID                  string         `json:"paperId"`
	URL                      string         `json:"url"`
	CitationCount            int            `json:"citationCount"`
	InfluentialCitationCount int            `json:"influentialCitationCount"`
	OpenAccessPDF            *openAccessPDF `json:"openAccessPdf"`
	FieldsOfStudy            []string       `json:"fieldsOfStudy"`
	Journal                  *journal       `json:"journal"`
}

// openAccessPDF ist der PDF-Deskriptor der API; alle Felder können null sein.
type openAccessPDF struct {
	URL     *string `json:"url"`
	Status  *string `json:"status"`
	License *string `json:"license"`
}

type journal struct {
	Name   string  `json:"name"`
	Pages  *string `json:"pages"`
	Volume *string `json:"volume"`
}

// errorResponse ist der Fehler-Body der API (z.B. bei 404).
type errorResponse struct {
	Error string `json:"error"`
}
