package configuration

type HistoryConfig struct {
	Enabled bool `json:"enabled"`
	// Number of state records to keep in the database
	MaxRecords int `json:"maxRecords"`
}
