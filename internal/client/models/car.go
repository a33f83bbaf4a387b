package models

type Category string

const (
	CategoryEconomy  Category = "economy"
	CategoryCompact  Category = "compact"
	CategoryMidsize  Category = "midsize"
	CategoryFullsize Category = "fullsize"
	CategoryLuxury   Category = "luxury"
	CategorySUV      Category = "suv"
)

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// Car is a catalog entry. ID is unique within the cars collection.
type Car struct {
	ID           string       `json:"id" validate:"required"`
	Brand        string       `json:"brand" validate:"required"`
	Model        string       `json:"model" validate:"required"`
	Year         int          `json:"year" validate:"min=1900"`
	PricePerDay  float64      `json:"pricePerDay" validate:"gt=0"`
	Image        string       `json:"image"`
	Category     Category     `json:"category" validate:"oneof=economy compact midsize fullsize luxury suv"`
	Transmission Transmission `json:"transmission" validate:"oneof=manual automatic"`
	FuelType     FuelType     `json:"fuelType" validate:"oneof=petrol diesel electric hybrid"`
	Seats        int          `json:"seats" validate:"min=1"`
	Features     []string     `json:"features"`
	Available    bool         `json:"available"`
	Rating       float64      `json:"rating" validate:"min=0,max=5"`
	Reviews      int          `json:"reviews" validate:"min=0"`
}

func (c Car) Title() string {
	return c.Brand + " " + c.Model
}

func (c Car) Validate() error {
	return validate.Struct(c)
}
