package models

// OperatingHours is a provider's daily service window, identical every day.
type OperatingHours struct {
	StartHour int `bson:"startHour" json:"startHour"` // 0-23, inclusive
	EndHour   int `bson:"endHour" json:"endHour"`     // 0-23, exclusive
}
