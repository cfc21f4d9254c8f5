package calendar

type Config struct {
	ClientID     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	RefreshToken string `yaml:"refreshToken"`

	CalendarID string `yaml:"calendarId"`
	TimeZone   string `yaml:"timeZone"`
}
