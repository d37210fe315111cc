package index

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/tidwall/gjson"

	"github.com/arabello/hub-frontend-new/internal/domain"
)

var requiredEntryFields = []string{"name", "title", "version", "author"}

// Validate checks the raw index document against the schema the catalog
// depends on before it is unmarshalled. Errors name the offending entry
// index and field.
func Validate(raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("%w: not valid JSON", domain.ErrInvalidIndex)
	}

	packages := gjson.GetBytes(raw, "packages")
	if !packages.Exists() {
		return fmt.Errorf("%w: missing packages field", domain.ErrInvalidIndex)
	}
	if !packages.IsArray() {
		return fmt.Errorf("%w: packages is not an array", domain.ErrInvalidIndex)
	}

	for i, entry := range packages.Array() {
		for _, field := range requiredEntryFields {
			if strings.TrimSpace(entry.Get(field).String()) == "" {
				return fmt.Errorf("%w: packages[%d].%s is missing or empty", domain.ErrInvalidIndex, i, field)
			}
		}

		version := entry.Get("version").String()
		if _, err := semver.NewVersion(version); err != nil {
			return fmt.Errorf("%w: packages[%d].version %q is not semver", domain.ErrInvalidIndex, i, version)
		}
	}

	return nil
}
