package packaging

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

const ManifestFileName = "manifest.webmanifest"

// ManifestIcon is one entry of the manifest icon list
type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// Manifest is the web app manifest written next to the icons
type Manifest struct {
	Name        string         `json:"name"`
	ShortName   string         `json:"short_name"`
	Description string         `json:"description"`
	ThemeColor  string         `json:"theme_color"`
	Icons       []ManifestIcon `json:"icons"`
}

// WriteManifest writes m as indented JSON
func WriteManifest(path string, m Manifest) error {
	data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
