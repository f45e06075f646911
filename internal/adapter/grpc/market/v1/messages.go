package marketv1

// Amounts and quantities travel as decimal strings. Figures that cannot be
// computed (price still loading, zero denominator) are sent as empty strings.

// Modal states
const (
	ModalStateClosed  = "closed"
	ModalStateAdding  = "adding"
	ModalStateEditing = "editing"
)

type Entry struct {
	Id          string `json:"id"`
	BoughtPrice string `json:"boughtPrice"`
	Quantity    string `json:"quantity"`
}

type Investment struct {
	ItemId  int64    `json:"itemId"`
	Entries []*Entry `json:"entries"`
}

type Market struct {
	Investments []*Investment `json:"investments"`
	Wishlist    []int64       `json:"wishlist"`
}

type Modal struct {
	State  string `json:"state"`
	ItemId int64  `json:"itemId,omitempty"`
	Entry  *Entry `json:"entry,omitempty"`
}

type CreateAccountRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateAccountResponse struct {
	AccountId string `json:"accountId"`
}

type GetMarketRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
}

type GetMarketResponse struct {
	Market *Market `json:"market"`
}

type AddEntryRequest struct {
	AccountId   string `json:"accountId" validate:"required,uuid"`
	ItemId      int64  `json:"itemId" validate:"gt=0"`
	EntryId     string `json:"entryId,omitempty" validate:"omitempty,max=64"` // Generated when empty
	BoughtPrice string `json:"boughtPrice" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
}

type AddEntryResponse struct {
	Entry *Entry `json:"entry"`
}

type EditEntryRequest struct {
	AccountId   string `json:"accountId" validate:"required,uuid"`
	ItemId      int64  `json:"itemId" validate:"gt=0"`
	EntryId     string `json:"entryId" validate:"required,max=64"`
	BoughtPrice string `json:"boughtPrice" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
}

type EditEntryResponse struct{}

type RemoveEntryRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
	ItemId    int64  `json:"itemId" validate:"gt=0"`
	EntryId   string `json:"entryId" validate:"required,max=64"`
}

type RemoveEntryResponse struct{}

type ToggleWishlistRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
	ItemId    int64  `json:"itemId" validate:"gt=0"`
}

type ToggleWishlistResponse struct {
	Wishlisted bool `json:"wishlisted"`
}

type OpenAddModalRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
	ItemId    int64  `json:"itemId" validate:"gt=0"`
}

type OpenEditModalRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
	ItemId    int64  `json:"itemId" validate:"gt=0"`
	EntryId   string `json:"entryId" validate:"required,max=64"`
}

type CloseModalRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
}

type GetModalRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
}

type ModalResponse struct {
	Modal *Modal `json:"modal"`
}

type SubmitModalRequest struct {
	AccountId   string `json:"accountId" validate:"required,uuid"`
	BoughtPrice string `json:"boughtPrice" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
}

type SubmitModalResponse struct {
	Entry *Entry `json:"entry"`
}

type EntryRow struct {
	Entry       *Entry `json:"entry"`
	BoughtTotal string `json:"boughtTotal"`
	SellTotal   string `json:"sellTotal"`
	GainTotal   string `json:"gainTotal"`
	GainPercent string `json:"gainPercent"`

	BoughtPriceDisplay string `json:"boughtPriceDisplay"`
	BoughtTotalDisplay string `json:"boughtTotalDisplay"`
	GainTotalDisplay   string `json:"gainTotalDisplay"`
	GainPercentDisplay string `json:"gainPercentDisplay"`
}

type InvestmentRow struct {
	ItemId         int64  `json:"itemId"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	ImageId        string `json:"imageId"`
	DetailPath     string `json:"detailPath"`
	PriceLoading   bool   `json:"priceLoading"`
	CurrentPrice   string `json:"currentPrice"`
	PriceChange    string `json:"priceChange"`
	BoughtTotal    string `json:"boughtTotal"`
	BoughtQuantity string `json:"boughtQuantity"`
	AvgBoughtPrice string `json:"avgBoughtPrice"`
	SellTotal      string `json:"sellTotal"`
	GainTotal      string `json:"gainTotal"`
	GainPercent    string `json:"gainPercent"`

	// Formatted for display, e.g. "$1,250" and "12.5%"
	BoughtTotalDisplay    string `json:"boughtTotalDisplay"`
	AvgBoughtPriceDisplay string `json:"avgBoughtPriceDisplay"`
	SellTotalDisplay      string `json:"sellTotalDisplay"`
	GainTotalDisplay      string `json:"gainTotalDisplay"`
	GainPercentDisplay    string `json:"gainPercentDisplay"`

	Entries []*EntryRow `json:"entries"`
}

type ListInvestmentRowsRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
	Language  string `json:"language,omitempty" validate:"omitempty,max=10"`
}

type ListInvestmentRowsResponse struct {
	Rows []*InvestmentRow `json:"rows"`
}

type GetInvestmentRowRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
	ItemId    int64  `json:"itemId" validate:"gt=0"`
	Language  string `json:"language,omitempty" validate:"omitempty,max=10"`
}

type GetInvestmentRowResponse struct {
	Row *InvestmentRow `json:"row"`
}

type CatalogItem struct {
	ItemId     int64  `json:"itemId"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	ImageId    string `json:"imageId"`
	DetailPath string `json:"detailPath"`
	Wishlisted bool   `json:"wishlisted"`
	Invested   bool   `json:"invested"`
}

type ListItemsRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
	Language  string `json:"language,omitempty" validate:"omitempty,max=10"`
}

type ListItemsResponse struct {
	Items []*CatalogItem `json:"items"`
}

type GetPortfolioSummaryRequest struct {
	AccountId string `json:"accountId" validate:"required,uuid"`
}

type GetPortfolioSummaryResponse struct {
	BoughtTotal        string `json:"boughtTotal"`
	GainTotal          string `json:"gainTotal"`
	GainPercent        string `json:"gainPercent"`
	PricedCount        int32  `json:"pricedCount"`
	PendingCount       int32  `json:"pendingCount"`
	BoughtTotalDisplay string `json:"boughtTotalDisplay"`
	GainTotalDisplay   string `json:"gainTotalDisplay"`
}
