package storage

type Config struct {
	ClientID     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	RefreshToken string `yaml:"refreshToken"`

	// Folder is the Drive folder id new resumes are placed into.
	Folder string `yaml:"folder"`
}
