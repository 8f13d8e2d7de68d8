package cache

import "time"

// TTL classes. Each cached resource picks the class matching how often
// its data changes.
const (
	// TTLStatic covers data that changes rarely: categories, delivery
	// zones, site settings, about-us content.
	TTLStatic = 30 * 24 * time.Hour

	// TTLMedium covers data refreshed within the hour.
	TTLMedium = time.Hour

	// TTLShort covers fast-moving data such as products and prices.
	TTLShort = 5 * time.Minute

	// TTLVeryShort covers data that changes continuously.
	TTLVeryShort = time.Minute

	// TTLCart keeps the shopping cart across return visits.
	TTLCart = 30 * 24 * time.Hour

	// TTLSession covers per-visitor session data.
	TTLSession = 24 * time.Hour
)

// Cache keys for the storefront resources. Fixed literals, one per
// logical resource.
const (
	KeyAllProducts    = "all_products"
	KeySiteCategories = "site_categories"
	KeyWilayasList    = "wilayas_list"
	KeySiteSettings   = "site_settings"
	KeyAboutUsContent = "about_us_content"
	KeyCart           = "app:cart"
)
