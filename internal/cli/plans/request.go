package plans

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/routinely/internal/models"
)

// LoadRequest reads a raw generation request from a JSON or YAML file,
// picked by extension.
func LoadRequest(path string) (models.RawRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.RawRequest{}, fmt.Errorf("failed to read request file: %w", err)
	}

	var raw models.RawRequest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return models.RawRequest{}, fmt.Errorf("failed to parse request file %s: %w", path, err)
	}
	return raw, nil
}
