package strictenv

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// INI parses the value as an INI document.
func INI(s string) (*ini.File, error) {
	return ini.Load([]byte(s))
}

// INIKey returns a Parser that extracts a single key from an INI document.
// keyPath is "Section.Key", or "Key" for the default section.
func INIKey(keyPath string) Parser[string] {
	sectionName, keyName := ini.DefaultSection, keyPath
	if before, after, found := strings.Cut(keyPath, "."); found {
		sectionName, keyName = before, after
	}
	return func(s string) (string, error) {
		if strings.TrimSpace(keyName) == "" {
			return "", fmt.Errorf("%w: empty INI key in %q", ErrBadPath, keyPath)
		}
		cfg, err := INI(s)
		if err != nil {
			return "", fmt.Errorf("failed to parse INI: %w", err)
		}
		section, err := cfg.GetSection(sectionName)
		if err != nil {
			return "", fmt.Errorf("%w: section %q", ErrNotFound, sectionName)
		}
		k, err := section.GetKey(keyName)
		if err != nil {
			return "", fmt.Errorf("%w: key %q in section %q", ErrNotFound, keyName, sectionName)
		}
		return k.String(), nil
	}
}
