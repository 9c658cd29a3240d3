package models

// Vehicle is one of the customer's registered cars.
type Vehicle struct {
	ID    string `bson:"id" json:"id"`
	Plate string `bson:"plate" json:"plate"`
	Model string `bson:"model" json:"model"`
	Color string `bson:"color" json:"color"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// DisplayName is the label used in booking summaries.
func (v Vehicle) DisplayName() string {
	if v.Model == "" {
		return v.Plate
	}
	return v.Model
}
