package request

// PriceQuoteRequest asks for the price of one service with a set of add-ons.
type PriceQuoteRequest struct {
	AddonIDs []string `json:"addon_ids"`
}
