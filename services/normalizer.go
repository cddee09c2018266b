package services

import "strings"

// NormalizePMCID bringt eine rohe PMC-ID in die kanonische Form "PMC<rest>".
// Es findet bewusst keine numerische Validierung statt: ungültige IDs laufen
// einfach als Miss durch den Store statt als Eingabefehler.
func NormalizePMCID(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 3 && strings.EqualFold(s[:3], "PMC") {
		return "PMC" + s[3:]
	}
	return "PMC" + s
}

// LooksLikeDOI entscheidet für den kombinierten Metadata-Endpunkt, ob eine
// Eingabe als DOI oder als PMC-ID behandelt wird. Heuristik: DOIs beginnen
// mit dem Registranten-Präfix "10." und enthalten einen Slash. Rein
// numerische Eingaben nehmen damit den PMC-Zweig.
func LooksLikeDOI(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "10.") && strings.Contains(s, "/")
}
