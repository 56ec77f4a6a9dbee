package entities

// ServiceDefinition is a catalog entry describing a billable service type.
//
// Deleting a definition does not cascade to orders that already reference it;
// the catalog usecase resolves dangling references to a fallback label.
type ServiceDefinition struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	ValorBase float64 `json:"valorBase"`
	LojaID    string  `json:"lojaId"`
}
