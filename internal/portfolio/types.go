package portfolio

// Category groups portfolio work on the site's filter bar.
type Category string

const (
	WebDesign      Category = "web-design"
	VehicleWraps   Category = "vehicle-wraps"
	BrandIdentity  Category = "brand-identity"
	PrintMarketing Category = "print-marketing"
	Specialized    Category = "specialized"
)

// Categories lists every valid category in display order.
var Categories = []Category{WebDesign, VehicleWraps, BrandIdentity, PrintMarketing, Specialized}

// ImageDisplay controls how a cover image is cropped on cards.
type ImageDisplay string

const (
	DisplayCover    ImageDisplay = "cover"
	DisplayCoverTop ImageDisplay = "cover-top"
	DisplayContain  ImageDisplay = "contain"
)

// Item is one piece of portfolio work. Identity is ID.
type Item struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Client       string       `json:"client"`
	Category     Category     `json:"category"`
	Description  string       `json:"description"`
	Images       []string     `json:"images"`
	Featured     bool         `json:"featured"`
	Year         int          `json:"year,omitempty"`
	Services     []string     `json:"services,omitempty"`
	ImageDisplay ImageDisplay `json:"imageDisplay,omitempty"`
}

// Cover returns the first image reference, or "" when the item has none.
func (it *Item) Cover() string {
	if len(it.Images) == 0 {
		return ""
	}
	return it.Images[0]
}
