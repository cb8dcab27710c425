package model

// Country maps a country code to its currency; pure lookup data.
type Country struct {
	Code           string
	Name           string
	Currency       string
	CurrencySymbol string
}

// Countries is the static reference table offered during onboarding.
var Countries = []Country{
	{Code: "US", Name: "United States", Currency: "USD", CurrencySymbol: "$"},
	{Code: "GB", Name: "United Kingdom", Currency: "GBP", CurrencySymbol: "£"},
	{Code: "FR", Name: "France", Currency: "EUR", CurrencySymbol: "€"},
	{Code: "DE", Name: "Germany", Currency: "EUR", CurrencySymbol: "€"},
	{Code: "IT", Name: "Italy", Currency: "EUR", CurrencySymbol: "€"},
	{Code: "ES", Name: "Spain", Currency: "EUR", CurrencySymbol: "€"},
	{Code: "CA", Name: "Canada", Currency: "CAD", CurrencySymbol: "$"},
	{Code: "AU", Name: "Australia", Currency: "AUD", CurrencySymbol: "$"},
	{Code: "JP", Name: "Japan", Currency: "JPY", CurrencySymbol: "¥"},
	{Code: "IN", Name: "India", Currency: "INR", CurrencySymbol: "₹"},
	{Code: "MA", Name: "Morocco", Currency: "MAD", CurrencySymbol: "DH"},
	{Code: "EG", Name: "Egypt", Currency: "EGP", CurrencySymbol: "E£"},
	{Code: "SA", Name: "Saudi Arabia", Currency: "SAR", CurrencySymbol: "﷼"},
	{Code: "AE", Name: "United Arab Emirates", Currency: "AED", CurrencySymbol: "د.إ"},
	{Code: "BR", Name: "Brazil", Currency: "BRL", CurrencySymbol: "R$"},
	{Code: "CH", Name: "Switzerland", Currency: "CHF", CurrencySymbol: "CHF"},
}

// CountryByCode looks up a country by its two-letter code. The second
// return value is false when the code is not in the table.
func CountryByCode(code string) (Country, bool) {
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// CurrencySymbolFor returns the display symbol for a country code,
// defaulting to "$" when the country is unknown.
func CurrencySymbolFor(code string) string {
	if c, ok := CountryByCode(code); ok {
		return c.CurrencySymbol
	}
	return "$"
}
