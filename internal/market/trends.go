package market

// Placeholder market data for the dashboard's trend chart and info panel.
// The series are fixed until a real housing-data provider is wired in.

const (
	trendStartYear = 2010
	trendEndYear   = 2020

	baseHousePrice  = 200.0
	baseRentalPrice = 100.0
	rentalYearStep  = 2.0
)

// TrendPoint is one year of the dual-axis trend series.
type TrendPoint struct {
	Year        int     `json:"year"`
	HousePrice  float64 `json:"house_price"`
	RentalPrice float64 `json:"rental_price"`
}

// Trends describes housing trends for one resolved zip code. Zip is "N/A"
// when the query zip was not resolved.
type Trends struct {
	Zip    string       `json:"zip"`
	Series []TrendPoint `json:"series"`
}

// TrendsFor builds the 2010-2020 series: house prices flat, rental prices
// rising linearly from the base.
func TrendsFor(zip string) Trends {
	t := Trends{Zip: zip}
	for year := trendStartYear; year <= trendEndYear; year++ {
		t.Series = append(t.Series, TrendPoint{
			Year:        year,
			HousePrice:  baseHousePrice,
			RentalPrice: baseRentalPrice + float64(year-trendStartYear)*rentalYearStep,
		})
	}
	return t
}

// Info is the static fact sheet shown in the dashboard's info panel.
type Info struct {
	Zip              string `json:"zip"`
	Population       string `json:"population"`
	Climate          string `json:"climate"`
	MedianIncome     string `json:"median_income"`
	CostOfLiving     string `json:"cost_of_living"`
	JobOpportunities string `json:"job_opportunities"`
}

// InfoFor returns the fact sheet for a resolved zip code.
func InfoFor(zip string) Info {
	return Info{
		Zip:              zip,
		Population:       "500,000",
		Climate:          "Temperate",
		MedianIncome:     "$55,000",
		CostOfLiving:     "Moderate",
		JobOpportunities: "Abundant",
	}
}
