package site

// Config holds configuration for the previewed site.
type Config struct {
	// Root is the directory served as the site root. Empty means the
	// directory containing the running executable.
	Root string `mapstructure:"root" default:""`
	// Title is the tool name shown in the banner.
	Title string `mapstructure:"title" default:"Tien Gow Analyzer"`
	// RequiredFiles lists the paths, relative to Root, that must exist
	// before the server starts.
	RequiredFiles []string `mapstructure:"required_files" default:"index.html,styles/main.css,scripts/tien-gow.js,scripts/ui.js,data/rankings.json"`
}

// DefaultRequiredFiles is the asset list the analysis tool cannot run without.
var DefaultRequiredFiles = []string{
	"index.html",
	"styles/main.css",
	"scripts/tien-gow.js",
	"scripts/ui.js",
	"data/rankings.json",
}

// Required returns the configured list, falling back to DefaultRequiredFiles.
func (c Config) Required() []string {
	if len(c.RequiredFiles) == 0 {
		return DefaultRequiredFiles
	}
	return c.RequiredFiles
}
