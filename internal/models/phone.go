package models

// Phone is a catalog product record as served by the backend. The backend
// owns these rows; the client keeps a read-mostly cached copy.
type Phone struct {
	ID            int         `json:"id"`
	Brand         string      `json:"brand" binding:"required"`
	Model         string      `json:"model" binding:"required"`
	Price         float64     `json:"price" binding:"required,gt=0"`
	StockQuantity int         `json:"stock_quantity" binding:"min=0"`
	Storage       string      `json:"storage" binding:"required"`
	Color         string      `json:"color" binding:"required"`
	ScreenSize    string      `json:"screen_size,omitempty"`
	Camera        string      `json:"camera,omitempty"`
	Battery       string      `json:"battery,omitempty"`
	Processor     string      `json:"processor,omitempty"`
	ImageURL      string      `json:"image_url,omitempty"`
	Description   string      `json:"description,omitempty"`
	Features      FeatureList `json:"features,omitempty"`
}

// InStock reports whether the phone can currently be ordered.
func (p Phone) InStock() bool {
	return p.StockQuantity > 0
}

// StockStatus buckets stock levels the way the storefront badges them.
type StockStatus string

const (
	StockOut  StockStatus = "out-of-stock"
	StockLow  StockStatus = "low-stock"
	StockFull StockStatus = "in-stock"
)

const lowStockThreshold = 10

// Status returns the stock bucket for badge rendering.
func (p Phone) Status() StockStatus {
	switch {
	case p.StockQuantity == 0:
		return StockOut
	case p.StockQuantity <= lowStockThreshold:
		return StockLow
	default:
		return StockFull
	}
}
