package config

import (
	"fmt"
	"os"

	"twitteralchemy/models"

	"gopkg.in/yaml.v3"
)

const tablesPath = "tables.yaml"

// LoadTableConfig reads table names from a yaml file such as
//
//	tweet: tweets
//	referenced_tweet: tweet_references
//	user: accounts
//
// A missing file is not an error; names it leaves out stay empty.
func LoadTableConfig(path string) (models.TableConfig, error) {
	var tables models.TableConfig

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return tables, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return tables, fmt.Errorf("failed reading tables file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return tables, fmt.Errorf("failed parsing tables file: %w", err)
	}
	return tables, nil
}
