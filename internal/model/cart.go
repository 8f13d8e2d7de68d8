package model

// CartItem is one line of the shopping cart. A line's identity is the
// (ProductID, SelectedSize, SelectedColor) tuple: the same product in a
// different size or color is a distinct line.
type CartItem struct {
	ProductID     string   `json:"product_id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`
	SelectedSize  string   `json:"selected_size"`
	SelectedColor string   `json:"selected_color"`
	Quantity      int      `json:"quantity"`
}

// SameLine reports whether other has the same line identity.
func (i CartItem) SameLine(other CartItem) bool {
	return i.ProductID == other.ProductID &&
		i.SelectedSize == other.SelectedSize &&
		i.SelectedColor == other.SelectedColor
}

// EffectivePrice returns the discounted price when present, otherwise
// the base price.
func (i CartItem) EffectivePrice() float64 {
	if i.DiscountPrice != nil {
		return *i.DiscountPrice
	}
	return i.Price
}
