package model

// Product is a single catalog item returned by the commerce API.
// Zero values mean the backend omitted the field.
type Product struct {
	ID            string
	Name          string
	Price         float64
	Description   string
	Stock         int
	Category      string
	ImageURL      string
	AverageRating float64
	RatingCount   int
}

// Shop describes a registered seller storefront.
type Shop struct {
	Name           string
	Address        string
	Description    string
	BannerImageURL string
	OwnerName      string
	AverageRating  float64
	RatingCount    int
}

// Rating exposes the review aggregate used for ranking.
func (p Product) Rating() (float64, int) { return p.AverageRating, p.RatingCount }

// Rating exposes the review aggregate used for ranking.
func (s Shop) Rating() (float64, int) { return s.AverageRating, s.RatingCount }
