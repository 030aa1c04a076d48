// Package manifest loads declarative TOML asset manifests into the entity
// model.
//
// A manifest declares groups and resources as arrays of tables:
//
//	base-url = "https://static.example.org"
//
//	[[group]]
//	uid = "core"
//	path = "js"
//
//	[[script]]
//	uid = "jquery"
//	group = "core"
//	file = "jquery.min.js"
//
//	[[script]]
//	uid = "app"
//	group = "core"
//	depends = ["jquery"]
//	file = "app.js"
//	compressed = "app.min.js"
//
// Groups nest through their parent field; resources attach to a group by
// uid. Member order follows declaration order within each section: groups,
// then scripts, styles and links. Predicate Include/Skip values cannot be
// expressed in a manifest, only fixed booleans.
package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/assetgraph/pkg/errors"
	"github.com/matzehuels/assetgraph/pkg/integrity"
	"github.com/matzehuels/assetgraph/pkg/resource"
)

// Tree is a loaded manifest: the root entities of the declaration tree
// plus document-level settings.
type Tree struct {
	// BaseURL is the manifest's suggested base URL for tag rendering.
	// Flags or callers may override it.
	BaseURL string

	// Roots holds the top-level groups and ungrouped resources in
	// declaration order. Pass them to resolve.Collect.
	Roots []resource.Member
}

type manifestFile struct {
	BaseURL string         `toml:"base-url"`
	Groups  []groupDecl    `toml:"group"`
	Scripts []resourceDecl `toml:"script"`
	Styles  []resourceDecl `toml:"style"`
	Links   []resourceDecl `toml:"link"`
}

type groupDecl struct {
	UID       string `toml:"uid"`
	Parent    string `toml:"parent"`
	Directory string `toml:"directory"`
	Path      string `toml:"path"`
	Skip      *bool  `toml:"skip"`
}

type resourceDecl struct {
	UID     string   `toml:"uid"`
	Group   string   `toml:"group"`
	Depends []string `toml:"depends"`

	Directory  string `toml:"directory"`
	Path       string `toml:"path"`
	URL        string `toml:"url"`
	File       string `toml:"file"`
	Compressed string `toml:"compressed"`

	Include      *bool  `toml:"include"`
	Unique       bool   `toml:"unique"`
	UniquePrefix string `toml:"unique-prefix"`
	Algorithm    string `toml:"algorithm"`

	Crossorigin    string `toml:"crossorigin"`
	Referrerpolicy string `toml:"referrerpolicy"`
	Type           string `toml:"type"`

	Async            string `toml:"async"`
	Defer            string `toml:"defer"`
	Nomodule         string `toml:"nomodule"`
	Integrity        string `toml:"integrity"`
	ComputeIntegrity bool   `toml:"compute-integrity"`

	Hreflang string `toml:"hreflang"`
	Media    string `toml:"media"`
	Rel      string `toml:"rel"`
	Sizes    string `toml:"sizes"`
	Title    string `toml:"title"`

	Extra map[string]string `toml:"extra"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "read manifest %s", path)
	}
	return Parse(data)
}

// Parse parses manifest bytes into an entity tree.
func Parse(data []byte) (*Tree, error) {
	var mf manifestFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "decode manifest")
	}

	groups := make(map[string]*resource.Group, len(mf.Groups))
	var rootOrder []resource.Member

	for _, gd := range mf.Groups {
		if gd.UID == "" {
			return nil, errs.New(errs.ErrCodeInvalidManifest, "group without uid")
		}
		if _, dup := groups[gd.UID]; dup {
			return nil, errs.New(errs.ErrCodeInvalidManifest, "duplicate group uid %q", gd.UID)
		}
		g := resource.NewGroup(gd.UID)
		g.Directory = gd.Directory
		g.Path = gd.Path
		if gd.Skip != nil {
			g.Skip = resource.Bool(*gd.Skip)
		}
		groups[gd.UID] = g
	}

	// Attach nested groups after all groups exist, so declaration order
	// never forces parents before children.
	for _, gd := range mf.Groups {
		g := groups[gd.UID]
		if gd.Parent == "" {
			rootOrder = append(rootOrder, g)
			continue
		}
		parent, ok := groups[gd.Parent]
		if !ok {
			return nil, errs.New(errs.ErrCodeInvalidManifest,
				"group %q references unknown parent %q", gd.UID, gd.Parent)
		}
		if err := parent.Add(g); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "nest group %q", gd.UID)
		}
	}

	sections := []struct {
		kind  resource.Kind
		decls []resourceDecl
	}{
		{resource.KindScript, mf.Scripts},
		{resource.KindStyle, mf.Styles},
		{resource.KindLink, mf.Links},
	}
	for _, section := range sections {
		for _, rd := range section.decls {
			res, err := buildResource(section.kind, rd)
			if err != nil {
				return nil, err
			}
			if rd.Group == "" {
				rootOrder = append(rootOrder, res)
				continue
			}
			g, ok := groups[rd.Group]
			if !ok {
				return nil, errs.New(errs.ErrCodeInvalidManifest,
					"%s %q references unknown group %q", section.kind, rd.UID, rd.Group)
			}
			if err := g.Add(res); err != nil {
				return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "add %s %q", section.kind, rd.UID)
			}
		}
	}

	return &Tree{BaseURL: mf.BaseURL, Roots: rootOrder}, nil
}

func buildResource(kind resource.Kind, rd resourceDecl) (*resource.Resource, error) {
	if err := errs.ValidateUID(rd.UID); err != nil {
		return nil, err
	}

	var res *resource.Resource
	switch kind {
	case resource.KindScript:
		res = resource.NewScript(rd.UID)
	case resource.KindStyle:
		res = resource.NewStyle(rd.UID)
	default:
		res = resource.NewLink(rd.UID)
	}

	res.Depends = rd.Depends
	res.Directory = rd.Directory
	res.Path = rd.Path
	res.URL = rd.URL
	res.Compressed = rd.Compressed
	res.Unique = rd.Unique
	res.Integrity = rd.Integrity
	res.ComputeIntegrity = rd.ComputeIntegrity
	res.Extra = rd.Extra

	if rd.File != "" {
		if err := errs.ValidateFileName(rd.File); err != nil {
			return nil, err
		}
		res.File = rd.File
	}
	if rd.Compressed != "" {
		if err := errs.ValidateFileName(rd.Compressed); err != nil {
			return nil, err
		}
	}
	if rd.Include != nil {
		res.Include = resource.Bool(*rd.Include)
	}
	if rd.UniquePrefix != "" {
		res.UniquePrefix = rd.UniquePrefix
	}
	if rd.Algorithm != "" {
		alg := integrity.Algorithm(rd.Algorithm)
		if !alg.Valid() {
			return nil, errs.New(errs.ErrCodeInvalidManifest,
				"%s %q: unsupported algorithm %q", kind, rd.UID, rd.Algorithm)
		}
		res.Algorithm = alg
	}

	setIfPresent(&res.Crossorigin, rd.Crossorigin)
	setIfPresent(&res.Referrerpolicy, rd.Referrerpolicy)
	setIfPresent(&res.Type, rd.Type)
	setIfPresent(&res.Async, rd.Async)
	setIfPresent(&res.Defer, rd.Defer)
	setIfPresent(&res.Nomodule, rd.Nomodule)
	setIfPresent(&res.Hreflang, rd.Hreflang)
	setIfPresent(&res.Media, rd.Media)
	setIfPresent(&res.Rel, rd.Rel)
	setIfPresent(&res.Sizes, rd.Sizes)
	setIfPresent(&res.Title, rd.Title)

	if err := res.Validate(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "invalid %s declaration", kind)
	}
	return res, nil
}

// setIfPresent keeps kind defaults (stylesheet rel/media/type) when the
// declaration leaves the field out.
func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
