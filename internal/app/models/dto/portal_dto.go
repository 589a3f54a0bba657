package dto

// FeatureCard is one tile on the portal dashboard
type FeatureCard struct {
	Name        string `json:"name" example:"Education and Social Activities"`
	Icon        string `json:"icon" example:"📚"`
	Route       string `json:"route" example:"/education"`
	Description string `json:"description" example:"Discover learning events and social activities"`
}

// DashboardResponse is the portal's feature-card catalog
type DashboardResponse struct {
	Features []FeatureCard `json:"features"`
}

// ModuleStatusResponse is the static payload of an unimplemented module
type ModuleStatusResponse struct {
	Module  string `json:"module" example:"Rocket Pad"`
	Message string `json:"message" example:"Travel booking coming soon..."`
}
