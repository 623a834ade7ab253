package model

// Settings is the single storefront preference record (last write wins).
type Settings struct {
    Language string `json:"language"`
    Currency string `json:"currency"`
    Theme    string `json:"theme"`
}

const (
    LangEnglish   = "en"
    LangMongolian = "mn"
    CurrencyUSD   = "USD"
    CurrencyMNT   = "MNT"
    ThemeLight    = "light"
    ThemeDark     = "dark"
)

// DefaultSettings is returned when nothing has been stored yet.
func DefaultSettings() Settings {
    return Settings{Language: LangEnglish, Currency: CurrencyUSD, Theme: ThemeLight}
}
