package tui

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// RefreshDataMsg requests data refresh
type RefreshDataMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// FilterSalesMsg opens the sales screen filtered by one client or product.
// At most one of the two keys is set.
type FilterSalesMsg struct {
	ClientNumCI string
	ProductID   string
}

// OpenNewClientFormMsg tells the clients screen to open the new client form
type OpenNewClientFormMsg struct{}

// firstRunCheckMsg reports whether any clients are registered yet
type firstRunCheckMsg struct {
	hasClients bool
}
