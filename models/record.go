package models

// PMCRecord repräsentiert eine einzelne Record-Datei im Dataset-Verzeichnis.
type PMCRecord struct {
	PMC string `json:"PMC"`
	DOI string `json:"DOI"`
}

// DOIResponse ist die Antwort der /doi Endpunkte.
type DOIResponse struct {
	PMCID   string  `json:"pmc_id"`
	DOI     *string `json:"doi"`
	Found   bool    `json:"found"`
	Message string  `json:"message"`
}

// MetadataResponse ist die Antwort des /metadata Endpunkts.
// PMCID ist null, wenn direkt eine DOI angefragt wurde.
type MetadataResponse struct {
	DOI     string         `json:"doi"`
	PMCID   *string        `json:"pmc_id"`
	Found   bool           `json:"found"`
	Message string         `json:"message"`
	Data    *PaperMetadata `json:"data"`
}
