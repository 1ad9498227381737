package cmd

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/promplate/partialjson/jsonparser"
)

type Config struct {
	Allow []string `yaml:"allow"`
}

// LoadConfig reads partialjson.yaml from the configured directory. A
// missing file is not an error; it just means no kinds are enabled from
// config.
func LoadConfig() (Config, error) {
	var result Config

	configFilename := path.Join(directory, "partialjson.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return result, nil
	}

	yamlFile, err := os.ReadFile(configFilename)
	if err != nil {
		return result, err
	}
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return result, err
	}
	return result, nil
}

func settingsFromAllowList(names []string) (jsonparser.Settings, error) {
	var s jsonparser.Settings
	for _, name := range names {
		switch name {
		case "all":
			s = jsonparser.AllowAll()
		case "null":
			s.AllowNull = true
		case "bool":
			s.AllowBool = true
		case "number":
			s.AllowNumber = true
		case "string":
			s.AllowString = true
		case "infinity":
			s.AllowInfinity = true
		case "-infinity":
			s.AllowNegInfinity = true
		case "nan":
			s.AllowNaN = true
		default:
			return s, fmt.Errorf("unknown literal kind %q in allow list", name)
		}
	}
	return s, nil
}

// resolveSettings applies the --allow flag if given, and the config file
// otherwise.
func resolveSettings() (jsonparser.Settings, error) {
	if len(allow) > 0 {
		return settingsFromAllowList(allow)
	}
	config, err := LoadConfig()
	if err != nil {
		return jsonparser.Settings{}, err
	}
	return settingsFromAllowList(config.Allow)
}
