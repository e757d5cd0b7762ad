package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	ErpNextURL       string
	ErpNextAPIKey    string
	ErpNextAPISecret string
	ErpSyncSchedule  string
}
