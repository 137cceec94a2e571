package domain

// Listing is the admin view of a marketplace listing.
type Listing struct {
	ID          string  `json:"id"`
	HostID      string  `json:"host_id"`
	Title       string  `json:"title"`
	City        string  `json:"city,omitempty"`
	Country     string  `json:"country,omitempty"`
	NightlyRate float64 `json:"nightly_rate"`
	Active      bool    `json:"active"`
}
