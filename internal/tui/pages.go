package tui

// Page identifies one storefront screen.
type Page int

const (
	PageListing Page = iota
	PageProduct
	PageBooking
	PagePayment
)

// pageOrder is the tab cycle and drawer order.
var pageOrder = []Page{PageListing, PageProduct, PageBooking, PagePayment}

// String returns the page name used in logs and the drawer.
func (p Page) String() string {
	switch p {
	case PageListing:
		return "listing"
	case PageProduct:
		return "product"
	case PageBooking:
		return "booking"
	case PagePayment:
		return "payment"
	default:
		return "unknown"
	}
}

// Title returns the page label shown in the header tabs.
func (p Page) Title() string {
	switch p {
	case PageListing:
		return "Shop"
	case PageProduct:
		return "Product"
	case PageBooking:
		return "Book a Session"
	case PagePayment:
		return "Checkout"
	default:
		return "?"
	}
}

func pageIndex(p Page) int {
	for i, q := range pageOrder {
		if q == p {
			return i
		}
	}
	return 0
}
