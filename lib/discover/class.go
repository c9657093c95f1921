package discover

import "fmt"

// Class selects which resource family a pipeline run targets.
type Class int

const (
	Style Class = iota
	Script
)

func ParseClass(mode string) (Class, error) {
	switch mode {
	case "css":
		return Style, nil
	case "js":
		return Script, nil
	}
	return 0, fmt.Errorf("invalid mode '%s', expected 'css' or 'js'", mode)
}

func (c Class) String() string {
	if c == Script {
		return "js"
	}
	return "css"
}

// OutputFile is the merged content file name inside the package.
func (c Class) OutputFile() string {
	if c == Script {
		return "global.js"
	}
	return "global.css"
}

// ManifestType is the type tag written into the manifest document.
func (c Class) ManifestType() string {
	if c == Script {
		return "globalJS"
	}
	return "globalCSS"
}
