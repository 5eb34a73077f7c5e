// Package entity contains the core business objects of the project.
package entity

import (
	"maps"
	"slices"
)

// CurrentSiteConfigVersion is the schema version written with every stored config.
const CurrentSiteConfigVersion = 1

// SiteConfigNestedKeys are the top-level keys merged one level deep by a partial update.
// Every other key is replaced wholesale.
var SiteConfigNestedKeys = []string{
	"ownerInfo",
	"colors",
	"display",
	"affiliateLinks",
	"affiliateProgram",
	"tradingViewSettings",
}

type OwnerInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type SiteColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

type DisplaySettings struct {
	ShowPrices       bool   `json:"showPrices"`
	ShowTestimonials bool   `json:"showTestimonials"`
	ShowTeam         bool   `json:"showTeam"`
	Language         string `json:"language"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// AffiliateProgram configures the commission paid on referred purchases.
type AffiliateProgram struct {
	Enabled        bool    `json:"enabled"`
	CommissionRate float64 `json:"commissionRate"`
	CookieDays     int     `json:"cookieDays"`
	MinPayout      float64 `json:"minPayout"`
}

type TradingViewSettings struct {
	DefaultSymbol   string `json:"defaultSymbol"`
	DefaultInterval string `json:"defaultInterval"`
	Theme           string `json:"theme"`
	ScannerURL      string `json:"scannerUrl"`
}

// CopytradingDefaults seed new copytrading accounts.
type CopytradingDefaults struct {
	DefaultBroker       string       `json:"defaultBroker"`
	DefaultServer       string       `json:"defaultServer"`
	DefaultRiskSettings RiskSettings `json:"defaultRiskSettings"`
}

// SiteConfig is the single global configuration document of the site.
type SiteConfig struct {
	Version             int                 `json:"version"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	LogoURL             string              `json:"logoUrl"`
	OwnerInfo           OwnerInfo           `json:"ownerInfo"`
	Colors              SiteColors          `json:"colors"`
	Display             DisplaySettings     `json:"display"`
	Features            []string            `json:"features"`
	SocialLinks         []SocialLink        `json:"socialLinks"`
	AffiliateLinks      map[string]string   `json:"affiliateLinks"`
	AffiliateProgram    AffiliateProgram    `json:"affiliateProgram"`
	TradingViewSettings TradingViewSettings `json:"tradingViewSettings"`
	Copytrading         CopytradingDefaults `json:"copytrading"`
	CustomScript        string              `json:"customScript"`
}

// DefaultSiteConfig returns a fresh copy of the built-in configuration.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		Version:     CurrentSiteConfigVersion,
		Name:        "MoreThanMoney",
		Description: "Trading education, signals and copytrading",
		LogoURL:     "/logo.png",
		OwnerInfo: OwnerInfo{
			Name:     "Ricardo Garcia",
			Email:    "info@morethanmoney.pt",
			Location: "Portugal",
		},
		Colors: SiteColors{
			Primary:    "#EAB308",
			Secondary:  "#000000",
			Accent:     "#F59E0B",
			Background: "#0A0A0A",
			Text:       "#FFFFFF",
		},
		Display: DisplaySettings{
			ShowPrices:       true,
			ShowTestimonials: true,
			ShowTeam:         true,
			Language:         "pt",
		},
		Features: []string{"membership", "bootcamp", "scanner", "copytrading"},
		SocialLinks: []SocialLink{
			{Platform: "instagram", URL: "https://instagram.com/morethanmoney"},
			{Platform: "telegram", URL: "https://t.me/morethanmoney"},
			{Platform: "youtube", URL: "https://youtube.com/@morethanmoney"},
		},
		AffiliateLinks: map[string]string{
			"broker":      "https://broker.example.com/?ref=mtm",
			"tradingview": "https://www.tradingview.com/?aff_id=mtm",
		},
		AffiliateProgram: AffiliateProgram{
			Enabled:        true,
			CommissionRate: 10,
			CookieDays:     30,
			MinPayout:      50,
		},
		TradingViewSettings: TradingViewSettings{
			DefaultSymbol:   "OANDA:XAUUSD",
			DefaultInterval: "60",
			Theme:           "dark",
			ScannerURL:      "https://www.tradingview.com/script/mtm-scanner",
		},
		Copytrading: CopytradingDefaults{
			DefaultBroker: "Vantage",
			DefaultServer: "VantageInternational-Live",
			DefaultRiskSettings: RiskSettings{
				MaxVolume:     1,
				MaxDrawdown:   20,
				UseStopLoss:   true,
				UseTakeProfit: true,
				CopyRatio:     1,
			},
		},
	}
}

// Clone returns a deep copy of the config.
func (c *SiteConfig) Clone() *SiteConfig {
	clone := *c
	clone.Features = slices.Clone(c.Features)
	clone.SocialLinks = slices.Clone(c.SocialLinks)
	if c.AffiliateLinks != nil {
		clone.AffiliateLinks = maps.Clone(c.AffiliateLinks)
	}

	return &clone
}
