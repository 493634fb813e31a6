package domain

// CompanyInfo is the static marketing content served on the public site.
type CompanyInfo struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Mission     string `json:"mission"`
	Vision      string `json:"vision"`
	Experience  string `json:"experience"`
	Website     string `json:"website"`
}

// OfficeInfo is the contact block shown on the office page and used to
// build WhatsApp quote links.
type OfficeInfo struct {
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	Email        string `json:"email"`
	OpeningHours string `json:"openingHours"`
	ClosingHours string `json:"closingHours"`
}
