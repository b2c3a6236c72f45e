package domain

type City struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"`
}

type Restaurant struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	City        string `json:"city" yaml:"city"`
	Cuisine     string `json:"cuisine" yaml:"cuisine"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	PriceRange  string `json:"priceRange" yaml:"priceRange"`
}
