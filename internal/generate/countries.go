package generate

// countryCodes weights the draw toward markets that appear more than once.
var countryCodes = []string{
	"BR", "US", "FR", "DE", "IT", "AF", "CA", "GB", "ES", "JP", "CN", "IN", "AU", "RU", "MX",
	"AR", "ZA", "PT", "NL", "SE", "CH", "KR", "TR", "NZ", "AE", "SA", "EG", "TH", "SG", "MY",
	"ID", "PH", "VN", "CL", "CO", "PE", "PL", "GR", "HU", "AT", "DK", "NO", "FI", "BE", "CZ",
	"IE", "IL", "HK", "TW", "PK", "BD", "IR", "IQ", "KW", "QA", "OM", "NG", "KE", "GH", "UG",
	"TZ", "ET", "MA", "DZ", "JO", "LB", "SY", "YE", "LY", "TN", "CM", "CI", "SN", "MG", "MU",
	"KM", "SC", "RW", "BI", "SS", "ZW", "ZM", "AO", "NA", "BW", "LS", "SZ", "MZ", "CG", "GA",
	"GQ", "BJ", "NE", "ML", "BF", "LR", "SL", "GN", "GW", "CV", "ST", "TD", "CF", "SO", "DJ",
	"ER", "GM", "LR", "TG", "BJ", "MW", "MZ", "BW", "NA", "SZ", "LS", "ZW", "ZM", "AO", "MZ",
	"BW", "NA", "SZ", "LS", "ZW", "ZM",
}
