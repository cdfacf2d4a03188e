package models

type EnvConfig struct {
	DBDriver   string
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	DBPath     string

	Tables TableConfig

	LogLevel  string
	LogFormat string
}

// TableConfig names the relational tables. It is resolved once at startup
// and handed to the database layer.
type TableConfig struct {
	Tweet           string `yaml:"tweet"`
	ReferencedTweet string `yaml:"referenced_tweet"`
	User            string `yaml:"user"`
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		Tweet:           "tweet",
		ReferencedTweet: "referenced_tweet",
		User:            "user",
	}
}

// Merge fills every empty name in cfg from other.
func (cfg TableConfig) Merge(other TableConfig) TableConfig {
	if cfg.Tweet == "" {
		cfg.Tweet = other.Tweet
	}
	if cfg.ReferencedTweet == "" {
		cfg.ReferencedTweet = other.ReferencedTweet
	}
	if cfg.User == "" {
		cfg.User = other.User
	}
	return cfg
}
