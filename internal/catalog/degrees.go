package catalog

// Degree tokens are matched as regular expressions, so the dots in
// abbreviations like "B.S." match any character.
var degreeTokens = []string{
	"Bachelor", "Master", "PhD", "Doctorate", "Associate", "Diploma", "Certificate",
	"B.S.", "B.A.", "M.S.", "M.A.", "MBA", "B.Tech", "M.Tech", "B.E.", "M.E.",
}

// DegreeTokens returns the degree keywords in search order.
func DegreeTokens() []string {
	return append([]string(nil), degreeTokens...)
}
