package view

import (
	"encoding/base64"
	"errors"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Branding image files in the asset directory.
const (
	LogoSponsor  = "logo_sebrae.png"
	LogoPolicies = "logo_politicas_publicas.png"
)

// Branding holds the logos as data URLs. A missing logo is empty.
type Branding struct {
	Sponsor  template.URL
	Policies template.URL
}

// LoadBranding reads the logos from dir. Missing files are not an error,
// the page is shown without them.
func LoadBranding(dir string) Branding {
	return Branding{
		Sponsor:  dataURL(filepath.Join(dir, LogoSponsor)),
		Policies: dataURL(filepath.Join(dir, LogoPolicies)),
	}
}

func dataURL(path string) template.URL {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("logo not found")
		return ""
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("could not read logo")
		return ""
	}

	// The content is base64 encoded, the URL cannot contain markup.
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(content))
}
