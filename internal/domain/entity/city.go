package entity

// City is a supported city: its display name, the provider's city id and the
// IANA zone used to render local dates and times.
type City struct {
	Name       string `json:"name" mapstructure:"name"`
	ProviderID string `json:"providerId" mapstructure:"provider-id"`
	TimeZoneID string `json:"timeZoneId" mapstructure:"time-zone"`
}
