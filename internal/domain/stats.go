package domain

type UsageStats struct {
	TotalIncidents   int64 `json:"totalIncidents"`
	SharedIncidents  int64 `json:"sharedIncidents"`
	StatesSupported  int   `json:"statesSupported"`
	ScriptsAvailable int   `json:"scriptsAvailable"`
}
