package itemstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fixtureFile is the top-level shape of a YAML item fixture: a
// mapping whose "items" key holds the list of records.
type fixtureFile struct {
	Items []Record `yaml:"items"`
}

// LoadFixture reads a YAML file of bibliographic records and returns
// them as value.Item-implementing Items, in file order.
func LoadFixture(path string) ([]*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("itemstore: read fixture: %w", err)
	}
	var ff fixtureFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("itemstore: parse fixture %s: %w", path, err)
	}
	out := make([]*Item, len(ff.Items))
	for i, rec := range ff.Items {
		out[i] = NewItem(rec)
	}
	return out, nil
}
