package repository

// ProductListFilter narrows product listings.
type ProductListFilter struct {
	CategoryID uint
	Featured   *bool
	Search     string
	OnlyActive bool
	Page       int
	PageSize   int
}

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	Status   string
	Page     int
	PageSize int
}
