package market

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trend classifies the most recent price movement for a product/market pair.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Valid reports whether the trend is one of the known values.
func (t Trend) Valid() bool {
	switch t {
	case TrendUp, TrendDown, TrendStable:
		return true
	}
	return false
}

// AlertDirection selects which side of the threshold fires an alert.
type AlertDirection string

const (
	AlertAbove AlertDirection = "above"
	AlertBelow AlertDirection = "below"
)

// Valid reports whether the direction is one of the known values.
func (d AlertDirection) Valid() bool {
	return d == AlertAbove || d == AlertBelow
}

// Product is a reference-data record describing a tradable commodity.
type Product struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
	Image    string `yaml:"image" json:"image"`
}

// Location is a geographic position with optional address fields.
type Location struct {
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
	Address   *string `yaml:"address,omitempty" json:"address,omitempty"`
	City      string  `yaml:"city" json:"city"`
	State     string  `yaml:"state" json:"state"`
}

// Market is a reference-data record for a physical marketplace.
// Distance is transient: populated only when a user coordinate is
// available, recomputed per query, never persisted.
type Market struct {
	ID             string   `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name"`
	Location       Location `yaml:"location" json:"location"`
	OperatingHours string   `yaml:"operating_hours" json:"operatingHours"`
	ContactPhone   *string  `yaml:"contact_phone,omitempty" json:"contactPhone,omitempty"`
	Products       []string `yaml:"products" json:"products"`

	Distance *float64 `yaml:"-" json:"-"`
}

// PriceData is one observed price point for one product at one market
// on one date.
type PriceData struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	MarketID      string          `json:"marketId"`
	Price         decimal.Decimal `json:"price"`
	Unit          string          `json:"unit"`
	Date          string          `json:"date"`
	Trend         Trend           `json:"trend"`
	PercentChange float64         `json:"percentChange"`
}

// Buyer is a reference-data record for a produce buyer.
type Buyer struct {
	ID                 string   `yaml:"id" json:"id"`
	Name               string   `yaml:"name" json:"name"`
	ProfileImage       *string  `yaml:"profile_image,omitempty" json:"profileImage,omitempty"`
	Location           Location `yaml:"location" json:"location"`
	ContactPhone       *string  `yaml:"contact_phone,omitempty" json:"contactPhone,omitempty"`
	Email              *string  `yaml:"email,omitempty" json:"email,omitempty"`
	InterestedProducts []string `yaml:"interested_products" json:"interestedProducts"`
	Rating             float64  `yaml:"rating" json:"rating"`
	Verified           bool     `yaml:"verified" json:"verified"`
}

// MarketAlert is a user-created price alert. Triggered state is
// computed on read, never stored.
type MarketAlert struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	MarketID  string          `json:"marketId"`
	Threshold decimal.Decimal `json:"threshold"`
	Direction AlertDirection  `json:"type"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
}

// UserProfile is the single local user's profile.
type UserProfile struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              *string    `json:"email,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	Location           *Location  `json:"location,omitempty"`
	ProfileImage       *string    `json:"profileImage,omitempty"`
	ProductsOfInterest []string   `json:"productsOfInterest"`
	DataSharingEnabled bool       `json:"isDataSharingEnabled"`
	NotificationsOn    bool       `json:"notificationsEnabled"`
	LastSyncTimestamp  *time.Time `json:"lastSyncTimestamp,omitempty"`
}
