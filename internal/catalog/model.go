package catalog

// Product is one catalog entry. Prices are integer VND.
type Product struct {
	ID    int
	Name  string
	Price int
	Image string
}

// Customer is one roster entry. Address is the default shipping address.
type Customer struct {
	ID      int
	Name    string
	Address string
}
