package model

// Color is a named swatch attached to a product.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ProductVariant is one size/color combination of a product with its
// stock on hand.
type ProductVariant struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	ColorName string `json:"color_name"`
	ColorHex  string `json:"color_hex"`
	Quantity  int    `json:"quantity"`
}

// Product is the storefront projection of a product row. Sizes and
// Colors are derived from the variant rows when variants exist,
// otherwise they fall back to the statically declared lists on the row.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         float64          `json:"price"`
	DiscountPrice *float64         `json:"discount_price,omitempty"`
	Category      string           `json:"category"`
	Images        []string         `json:"images"`
	Description   string           `json:"description"`
	Variants      []ProductVariant `json:"variants,omitempty"`
	Sizes         []string         `json:"sizes"`
	Colors        []Color          `json:"colors"`
}

// Category groups products on the storefront.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// Wilaya is a delivery zone with its two fee schedules: home delivery
// and pickup at a post desk.
type Wilaya struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DeliveryHome float64 `json:"delivery_home"`
	DeliveryPost float64 `json:"delivery_post"`
}

// SiteSettings holds the global storefront branding and hero content.
type SiteSettings struct {
	SiteName            string `json:"site_name"`
	LogoURL             string `json:"logo_url"`
	FaviconURL          string `json:"favicon_url,omitempty"`
	PrimaryColor        string `json:"primary_color"`
	SecondaryColor      string `json:"secondary_color"`
	AnnouncementText    string `json:"announcement_text,omitempty"`
	HeroImageURL        string `json:"hero_image_url,omitempty"`
	HeroTitle           string `json:"hero_title,omitempty"`
	HeroSubtitle        string `json:"hero_subtitle,omitempty"`
	DeliveryCompanyName string `json:"delivery_company_name,omitempty"`
}

// AboutFeature is one highlighted point on the about-us page.
type AboutFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// AboutUsContent is the about-us page body.
type AboutUsContent struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Features []AboutFeature `json:"features"`
}
