package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// IconData describes one catalog glyph and the facts the reasoning games
// group it by.
type IconData struct {
	Emoji            string     `yaml:"emoji" json:"emoji"`
	Name             string     `yaml:"name" json:"name"`
	PrimaryCategory  string     `yaml:"primary" json:"primaryCategory"`
	SubCategory      string     `yaml:"sub,omitempty" json:"subCategory,omitempty"`
	TertiaryCategory string     `yaml:"tertiary,omitempty" json:"tertiaryCategory,omitempty"`
	Attributes       Attributes `yaml:"attributes,omitempty" json:"attributes"`
}

// Attributes is the typed attribute bag of an icon. Nil booleans and empty
// strings mean "unknown".
type Attributes struct {
	IsLivingOrganism *bool    `yaml:"is_living_organism,omitempty" json:"isLivingOrganism,omitempty"`
	IsEdible         *bool    `yaml:"is_edible,omitempty" json:"isEdible,omitempty"`
	CanFly           *bool    `yaml:"can_fly,omitempty" json:"canFly,omitempty"`
	IsReal           *bool    `yaml:"is_real,omitempty" json:"isReal,omitempty"`
	Environment      string   `yaml:"environment,omitempty" json:"environment,omitempty"`
	Propulsion       string   `yaml:"propulsion,omitempty" json:"propulsion,omitempty"`
	Diet             string   `yaml:"diet,omitempty" json:"diet,omitempty"`
	Temperature      string   `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	PowerSource      string   `yaml:"power_source,omitempty" json:"powerSource,omitempty"`
	Function         string   `yaml:"function,omitempty" json:"function,omitempty"`
	Color            []string `yaml:"color,omitempty" json:"color,omitempty"`
}

// HasColor reports whether c is one of the icon's colors.
func (d IconData) HasColor(c string) bool {
	return slices.Contains(d.Attributes.Color, c)
}

// Catalog is an immutable, indexed set of icons. It is safe for concurrent
// use by any number of round generators.
type Catalog struct {
	icons   []IconData
	byEmoji map[string]*IconData
}

// New builds a catalog from icons. Later duplicates of an emoji are ignored.
func New(icons []IconData) *Catalog {
	c := &Catalog{byEmoji: make(map[string]*IconData, len(icons))}
	for _, icon := range icons {
		if icon.Emoji == "" {
			continue
		}
		if _, dup := c.byEmoji[icon.Emoji]; dup {
			continue
		}
		c.icons = append(c.icons, icon)
	}
	for i := range c.icons {
		c.byEmoji[c.icons[i].Emoji] = &c.icons[i]
	}
	return c
}

// All returns a copy of every icon in catalog order.
func (c *Catalog) All() []IconData {
	return slices.Clone(c.icons)
}

// Len returns the number of icons.
func (c *Catalog) Len() int {
	return len(c.icons)
}

// Lookup returns the icon with the given emoji.
func (c *Catalog) Lookup(emoji string) (IconData, bool) {
	d, ok := c.byEmoji[emoji]
	if !ok {
		return IconData{}, false
	}
	return *d, true
}

// Filter returns the icons for which keep returns true, in catalog order.
func (c *Catalog) Filter(keep func(IconData) bool) []IconData {
	var out []IconData
	for _, icon := range c.icons {
		if keep(icon) {
			out = append(out, icon)
		}
	}
	return out
}

//go:embed icons.yaml
var iconsYAML []byte

// def is the package-level catalog, set by init().
var def *Catalog

func init() {
	icons, err := parseIcons(iconsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	def = New(icons)
}

// Default returns the built-in icon catalog.
func Default() *Catalog {
	return def
}

// parseIcons strictly decodes a YAML list of icons.
func parseIcons(data []byte) ([]IconData, error) {
	var icons []IconData
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&icons); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	for i, icon := range icons {
		if icon.Emoji == "" || icon.Name == "" || icon.PrimaryCategory == "" {
			return nil, fmt.Errorf("icon %d: emoji, name and primary are required", i)
		}
	}
	return icons, nil
}
