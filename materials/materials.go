// Package materials resolves material names to Hugoniot parameters. A
// catalog starts from a built-in table of common shock-physics materials
// and can be extended or overridden from a YAML catalog file.
package materials

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/shockphys/goshock/hugoniot"
)

// Linear Us-Up fits in g/cc, km/s. Values from the standard compendium
// fits used for quick-look impedance calculations.
var builtin = []hugoniot.EOS{
	{Name: "Aluminum", Rho0: 2.703, C0: 5.24, S: 1.40},
	{Name: "Copper", Rho0: 8.93, C0: 3.94, S: 1.489},
	{Name: "Epoxy", Rho0: 1.186, C0: 2.73, S: 1.493},
	{Name: "Iron", Rho0: 7.85, C0: 3.57, S: 1.92},
	{Name: "PMMA", Rho0: 1.186, C0: 2.598, S: 1.516},
	{Name: "Polyethylene", Rho0: 0.915, C0: 2.901, S: 1.481},
	{Name: "Quartz", Rho0: 2.204, C0: 1.205, S: 1.599},
	{Name: "Stainless304", Rho0: 7.896, C0: 4.569, S: 1.49},
	{Name: "Tungsten", Rho0: 19.224, C0: 4.029, S: 1.237},
	{Name: "Water", Rho0: 0.998, C0: 1.647, S: 1.921},
}

// CatalogFile is the YAML shape of a catalog file.
type CatalogFile struct {
	Materials []hugoniot.EOS `yaml:"Materials"`
}

// Catalog maps material names to their EOS. Entries loaded from a file or
// added at runtime are kept separately so Save writes back only those.
type Catalog struct {
	entries map[string]hugoniot.EOS
	custom  map[string]hugoniot.EOS
}

// Builtin returns a catalog holding only the built-in material table.
func Builtin() *Catalog {
	c := &Catalog{
		entries: make(map[string]hugoniot.EOS, len(builtin)),
		custom:  make(map[string]hugoniot.EOS),
	}
	for _, eos := range builtin {
		c.entries[eos.Name] = eos
	}
	return c
}

// Load returns the built-in catalog overlaid with the entries of the given
// YAML catalog file. A missing file is not an error; the built-in table is
// returned unchanged so a fresh install works without any setup.
func Load(path string) (*Catalog, error) {
	c := Builtin()
	if path == "" {
		return c, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var cf CatalogFile
	if err = yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	for _, eos := range cf.Materials {
		if err = c.Add(eos); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
	}
	return c, nil
}

// Get resolves a material by name.
func (c *Catalog) Get(name string) (hugoniot.EOS, error) {
	eos, ok := c.entries[name]
	if !ok {
		return hugoniot.EOS{}, &hugoniot.InvalidMaterialError{
			Name: name, Reason: "not in catalog"}
	}
	return eos, nil
}

// Add validates and inserts a material, overriding any existing entry of
// the same name. The entry is marked for Save.
func (c *Catalog) Add(eos hugoniot.EOS) error {
	if err := eos.Validate(); err != nil {
		return err
	}
	c.entries[eos.Name] = eos
	c.custom[eos.Name] = eos
	return nil
}

// Names lists all catalog entries in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the non-builtin entries back to a YAML catalog file.
func (c *Catalog) Save(path string) error {
	names := make([]string, 0, len(c.custom))
	for name := range c.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	cf := CatalogFile{Materials: make([]hugoniot.EOS, 0, len(names))}
	for _, name := range names {
		cf.Materials = append(cf.Materials, c.custom[name])
	}
	data, err := yaml.Marshal(&cf)
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err = ioutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog %s: %w", path, err)
	}
	return nil
}
