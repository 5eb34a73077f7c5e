package document

import "go.uber.org/fx"

// Module provides the document repositories FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewCartRepository,
		NewCommissionRepository,
		NewMemberRepository,
		NewCopytradingRepository,
		NewSiteConfigRepository,
	),
)
