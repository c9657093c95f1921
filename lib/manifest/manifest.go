// Package manifest derives the package metadata document written next
// to the merged content file.
package manifest

import (
	"fmt"

	"pagepack/lib/discover"
	"pagepack/lib/textutil"

	"gopkg.in/yaml.v3"
)

const FileName = "client-extension.yaml"

// Manifest describes one packaged resource class.
type Manifest struct {
	TechnicalId string
	VisibleName string
	Class       discover.Class
	OutputFile  string
}

// TechnicalId is the deterministic slug keying the manifest entry and
// naming the archive. The class suffix differs, so it must be derived
// per class even when the display name is shared.
func TechnicalId(visibleName string, class discover.Class) string {
	return fmt.Sprintf("%s-%s", textutil.Slug(visibleName), class)
}

func Build(visibleName string, class discover.Class) Manifest {
	return Manifest{
		TechnicalId: TechnicalId(visibleName, class),
		VisibleName: visibleName,
		Class:       class,
		OutputFile:  class.OutputFile(),
	}
}

// scriptAttributes is the fixed metadata attached to the emitted
// script element.
var scriptAttributes = []*yaml.Node{
	strNode("async"), boolNode(true),
	strNode("data-attribute"), strNode("value"),
	strNode("data-senna-track"), strNode("permanent"),
	strNode("fetchpriority"), strNode("low"),
}

// Encode serializes the manifest document:
//
//	assemble:
//	    - from: assets
//	      into: static
//	<technicalId>:
//	    name: ...
//	    type: globalCSS|globalJS
//	    url: global.css|global.js
//	    scriptElementAttributes: {...}   (script class only)
//
// The entry key is dynamic, so the document is built from yaml nodes
// rather than struct tags to keep key order stable.
func (m Manifest) Encode() ([]byte, error) {
	entry := &yaml.Node{Kind: yaml.MappingNode}
	entry.Content = append(entry.Content,
		strNode("name"), strNode(m.VisibleName),
		strNode("type"), strNode(m.Class.ManifestType()),
		strNode("url"), strNode(m.OutputFile),
	)
	if m.Class == discover.Script {
		entry.Content = append(entry.Content,
			strNode("scriptElementAttributes"),
			&yaml.Node{Kind: yaml.MappingNode, Content: scriptAttributes},
		)
	}

	assemble := &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{
		{Kind: yaml.MappingNode, Content: []*yaml.Node{
			strNode("from"), strNode("assets"),
			strNode("into"), strNode("static"),
		}},
	}}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		strNode("assemble"), assemble,
		strNode(m.TechnicalId), entry,
	}}
	return yaml.Marshal(doc)
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

func boolNode(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprintf("%t", b)}
}
