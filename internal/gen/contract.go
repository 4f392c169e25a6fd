package gen

import (
	"errors"
	"fmt"
	"go/token"
	"io"

	"github.com/spf13/viper"

	"github.com/oliverbestmann/erasure/internal/set"
)

var ErrInvalidContract = errors.New("invalid contract")

type Param struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

type Method struct {
	Name    string   `mapstructure:"name"`
	Params  []Param  `mapstructure:"params"`
	Results []string `mapstructure:"results"`

	// Mutates routes the method through the write path of a container,
	// which copies a shared value first.
	Mutates bool `mapstructure:"mutates"`
}

// Contract is the definition of a capability contract.
type Contract struct {
	Package string   `mapstructure:"package"`
	Name    string   `mapstructure:"contract"`
	Doc     string   `mapstructure:"doc"`
	Imports []string `mapstructure:"imports"`
	Methods []Method `mapstructure:"methods"`
}

// reserved names are methods and fields of the generated wrappers.
var reserved = func() *set.Set[string] {
	names := set.Of(
		"Apply", "Empty", "Type", "Read", "Write", "Reset",
		"CopyFrom", "MoveFrom", "Swap", "UseCount", "Unique", "Inlined",
	)

	for _, strategy := range Strategies {
		names.Insert(strategy)
	}

	return names
}()

// Load reads a contract definition from a file. The format is derived
// from the file extension.
func Load(path string) (*Contract, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read contract %q: %w", path, err)
	}

	return decode(v)
}

// Read reads a contract definition in the given format, e.g. "yaml".
func Read(r io.Reader, format string) (*Contract, error) {
	v := viper.New()
	v.SetConfigType(format)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read contract: %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Contract, error) {
	var contract Contract
	if err := v.Unmarshal(&contract); err != nil {
		return nil, fmt.Errorf("decode contract: %w", err)
	}

	// imports are rendered in a stable order without duplicates
	contract.Imports = set.Sorted(set.Of(contract.Imports...))

	if contract.Doc == "" {
		contract.Doc = contract.Name + " is a capability contract."
	}

	return &contract, nil
}

func (c *Contract) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("%w: package name %q", ErrInvalidContract, c.Package)
	}

	if !token.IsIdentifier(c.Name) || !token.IsExported(c.Name) {
		return fmt.Errorf("%w: contract name %q must be an exported identifier", ErrInvalidContract, c.Name)
	}

	if len(c.Methods) == 0 {
		return fmt.Errorf("%w: contract %s has no methods", ErrInvalidContract, c.Name)
	}

	var seen set.Set[string]
	for _, method := range c.Methods {
		if !token.IsIdentifier(method.Name) || !token.IsExported(method.Name) {
			return fmt.Errorf("%w: method name %q must be an exported identifier", ErrInvalidContract, method.Name)
		}

		if reserved.Has(method.Name) {
			return fmt.Errorf("%w: method name %q clashes with the container api", ErrInvalidContract, method.Name)
		}

		if !seen.Insert(method.Name) {
			return fmt.Errorf("%w: duplicate method %q", ErrInvalidContract, method.Name)
		}

		var params set.Set[string]
		for _, param := range method.Params {
			if !token.IsIdentifier(param.Name) || param.Name == "c" {
				return fmt.Errorf("%w: parameter %q of %s", ErrInvalidContract, param.Name, method.Name)
			}

			if !params.Insert(param.Name) {
				return fmt.Errorf("%w: duplicate parameter %q of %s", ErrInvalidContract, param.Name, method.Name)
			}

			if param.Type == "" {
				return fmt.Errorf("%w: parameter %q of %s has no type", ErrInvalidContract, param.Name, method.Name)
			}
		}
	}

	return nil
}
