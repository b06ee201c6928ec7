package themedict

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wonny/themeleader/internal/contracts"
)

// themeFile is the on-disk dictionary format
type themeFile struct {
	Themes []contracts.ThemeEntry `yaml:"themes"`
}

// LoadFile reads a dictionary from a YAML file
// 예:
//
//	themes:
//	  - label: 반도체
//	    members: [삼성전자, SK하이닉스]
//	    keywords: [HBM, 파운드리]
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}

	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse theme file: %w", err)
	}

	if len(f.Themes) == 0 {
		return nil, fmt.Errorf("theme file %s defines no themes", path)
	}

	for _, e := range f.Themes {
		if e.Label == "" {
			return nil, fmt.Errorf("theme file %s contains an entry without a label", path)
		}
	}

	return New(f.Themes), nil
}

// LoadFileOrDefault loads path when set, otherwise the built-in map
func LoadFileOrDefault(path string) (*Dictionary, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
