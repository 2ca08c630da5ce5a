package provider

import "strings"

// countryLocations maps ISO country codes to the location names the search
// backends expect.
var countryLocations = map[string]string{
	"TR": "Turkey", "US": "United States", "GB": "United Kingdom",
	"DE": "Germany", "FR": "France", "IT": "Italy", "ES": "Spain",
	"PT": "Portugal", "RU": "Russia", "VN": "Vietnam", "CA": "Canada",
	"AU": "Australia", "BR": "Brazil", "MX": "Mexico", "IN": "India",
	"JP": "Japan", "KR": "South Korea", "CN": "China", "NL": "Netherlands",
	"BE": "Belgium", "CH": "Switzerland", "AT": "Austria", "SE": "Sweden",
	"NO": "Norway", "DK": "Denmark", "FI": "Finland", "PL": "Poland",
	"GR": "Greece", "CZ": "Czech Republic", "HU": "Hungary", "RO": "Romania",
	"BG": "Bulgaria", "HR": "Croatia", "IE": "Ireland", "NZ": "New Zealand",
	"AR": "Argentina", "CL": "Chile", "CO": "Colombia", "PE": "Peru",
	"ZA": "South Africa", "EG": "Egypt", "SA": "Saudi Arabia",
	"AE": "United Arab Emirates", "IL": "Israel", "TH": "Thailand",
	"ID": "Indonesia", "MY": "Malaysia", "SG": "Singapore", "PH": "Philippines",
}

// googleDomains maps ISO country codes to country-specific Google domains.
var googleDomains = map[string]string{
	"TR": "google.com.tr", "US": "google.com", "GB": "google.co.uk",
	"DE": "google.de", "FR": "google.fr", "IT": "google.it",
	"ES": "google.es", "PT": "google.pt", "RU": "google.ru",
	"JP": "google.co.jp", "KR": "google.co.kr", "CN": "google.com.hk",
	"AU": "google.com.au", "CA": "google.ca", "BR": "google.com.br",
	"MX": "google.com.mx", "IN": "google.co.in",
}

// LocationForCountry returns the location name for an ISO country code.
func LocationForCountry(countryCode string) string {
	if loc, ok := countryLocations[strings.ToUpper(countryCode)]; ok {
		return loc
	}
	return "United States"
}

// GoogleDomainForCountry returns the Google domain for an ISO country code.
func GoogleDomainForCountry(countryCode string) string {
	if d, ok := googleDomains[strings.ToUpper(countryCode)]; ok {
		return d
	}
	return "google.com"
}

// GoogleCountryCode returns the gl parameter for an ISO country code.
// A few codes differ from their lowercase ISO form.
func GoogleCountryCode(countryCode string) string {
	switch strings.ToUpper(countryCode) {
	case "GB":
		return "uk"
	default:
		return strings.ToLower(countryCode)
	}
}
