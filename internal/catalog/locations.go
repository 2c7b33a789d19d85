package catalog

var commonLocations = []string{
	"San Francisco", "New York", "Los Angeles", "Chicago", "Austin", "Seattle", "Boston",
	"Denver", "Atlanta", "Miami", "Dallas", "Phoenix", "Philadelphia", "Houston",
	"Washington DC", "Portland", "Nashville", "Raleigh", "Salt Lake City", "Remote",
	"United States", "USA", "Canada", "UK", "London", "Toronto", "Vancouver", "Berlin",
	"Amsterdam", "Paris", "Sydney", "Melbourne", "Singapore", "Tokyo", "Bangalore",
	"Mumbai", "Delhi", "Hyderabad", "Pune", "Chennai",
}

// StateSuffixes are the region abbreviations recognised after a "City, XX" comma.
var StateSuffixes = []string{
	"CA", "NY", "TX", "FL", "WA", "IL", "MA", "CO", "GA", "AZ", "PA", "OR", "NC", "UT", "USA", "US",
}

// CommonLocations returns the fallback city and country names, in priority order.
func CommonLocations() []string {
	return append([]string(nil), commonLocations...)
}
