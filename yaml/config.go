// Package yaml loads bulletin configuration files with yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"slices"

	"github.com/fwojciec/bulletin"
	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Classifier         string              `yaml:"classifier"`
	MaxKeyLength       *int                `yaml:"max_key_length"`
	NumberedHeadings   *bool               `yaml:"numbered_headings"`
	MergeContinuations *bool               `yaml:"merge_continuations"`
	IncludeKeyInValue  *bool               `yaml:"include_key_in_value"`
	TrimContact        *bool               `yaml:"trim_contact"`
	Keywords           map[string][]string `yaml:"keywords"`
	Aliases            map[string]string   `yaml:"aliases"`
	Sites              []fileSite          `yaml:"sites"`
}

type fileSite struct {
	Name         string     `yaml:"name"`
	Region       string     `yaml:"region"`
	Category     string     `yaml:"category"`
	Lists        []fileList `yaml:"lists"`
	Details      []string   `yaml:"details"`
	LinkSelector string     `yaml:"link_selector"`
	PageParam    string     `yaml:"page_param"`
	MaxPages     int        `yaml:"max_pages"`
	Render       fileRender `yaml:"render"`
}

type fileList struct {
	URL    string `yaml:"url"`
	Region string `yaml:"region"`
}

type fileRender struct {
	Content      []string       `yaml:"content"`
	Heading      []string       `yaml:"heading"`
	Breadcrumb   string         `yaml:"breadcrumb"`
	Categories   []fileCategory `yaml:"categories"`
	Remove       []string       `yaml:"remove"`
	Info         []fileInfo     `yaml:"info"`
	Images       string         `yaml:"images"`
	BreakMarkers bool           `yaml:"break_markers"`
	BreakBullets bool           `yaml:"break_bullets"`
}

type fileCategory struct {
	Contains string `yaml:"contains"`
	Category string `yaml:"category"`
}

type fileInfo struct {
	Item  string `yaml:"item"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// LoadConfig reads the file at path and applies it on top of base. Keyword
// and alias tables extend the base tables; sites replace base sites of the
// same name and are otherwise appended. The result is validated.
func LoadConfig(path string, base bulletin.Config) (*bulletin.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, bulletin.Errorf(bulletin.ENOTFOUND, "config file %s not found", path)
		}
		return nil, err
	}
	return ParseConfig(data, base)
}

// ParseConfig is like LoadConfig but reads the YAML document from data.
func ParseConfig(data []byte, base bulletin.Config) (*bulletin.Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, bulletin.Errorf(bulletin.EINVALID, "parse config: %v", err)
	}

	cfg := clone(base)
	if err := fc.apply(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	for i := range cfg.Sites {
		if err := cfg.Sites[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (fc *fileConfig) apply(cfg *bulletin.Config) error {
	r := &cfg.Rules
	if fc.Classifier != "" {
		r.Classifier = fc.Classifier
	}
	if fc.MaxKeyLength != nil {
		r.MaxKeyLength = *fc.MaxKeyLength
	}
	setBool(&r.NumberedHeadings, fc.NumberedHeadings)
	setBool(&r.MergeContinuations, fc.MergeContinuations)
	setBool(&r.IncludeKeyInValue, fc.IncludeKeyInValue)
	setBool(&r.TrimContact, fc.TrimContact)

	// New groups are appended in field name order.
	fields := make([]string, 0, len(fc.Keywords))
	for field := range fc.Keywords {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		key, err := bulletin.ParseFieldKey(field)
		if err != nil {
			return err
		}
		addKeywords(r, key, fc.Keywords[field])
	}

	if len(fc.Aliases) > 0 && r.Aliases == nil {
		r.Aliases = make(map[string]bulletin.FieldKey, len(fc.Aliases))
	}
	for alias, field := range fc.Aliases {
		key, err := bulletin.ParseFieldKey(field)
		if err != nil {
			return bulletin.Errorf(bulletin.EINVALID, "alias %q: %s", alias, bulletin.ErrorMessage(err))
		}
		r.Aliases[alias] = key
	}

	for _, fs := range fc.Sites {
		site := fs.site()
		if i := slices.IndexFunc(cfg.Sites, func(s bulletin.Site) bool { return s.Name == site.Name }); i >= 0 {
			cfg.Sites[i] = site
			continue
		}
		cfg.Sites = append(cfg.Sites, site)
	}
	return nil
}

func addKeywords(r *bulletin.Rules, key bulletin.FieldKey, words []string) {
	for i := range r.Keywords {
		if r.Keywords[i].Key == key {
			r.Keywords[i].Words = append(r.Keywords[i].Words, words...)
			return
		}
	}
	r.Keywords = append(r.Keywords, bulletin.KeywordGroup{Key: key, Words: words})
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func (fs fileSite) site() bulletin.Site {
	s := bulletin.Site{
		Name:         fs.Name,
		Region:       fs.Region,
		Category:     fs.Category,
		Details:      fs.Details,
		LinkSelector: fs.LinkSelector,
		PageParam:    fs.PageParam,
		MaxPages:     fs.MaxPages,
		Render: bulletin.RenderProfile{
			Content:      fs.Render.Content,
			Heading:      fs.Render.Heading,
			Breadcrumb:   fs.Render.Breadcrumb,
			Remove:       fs.Render.Remove,
			Images:       fs.Render.Images,
			BreakMarkers: fs.Render.BreakMarkers,
			BreakBullets: fs.Render.BreakBullets,
		},
	}
	for _, l := range fs.Lists {
		s.Lists = append(s.Lists, bulletin.ListSource{URL: l.URL, Region: l.Region})
	}
	for _, c := range fs.Render.Categories {
		s.Render.Categories = append(s.Render.Categories, bulletin.CategoryRule{Contains: c.Contains, Category: c.Category})
	}
	for _, in := range fs.Render.Info {
		s.Render.Info = append(s.Render.Info, bulletin.InfoSelector{Item: in.Item, Label: in.Label, Value: in.Value})
	}
	return s
}

// clone copies the tables of base so applying a file never mutates it.
func clone(base bulletin.Config) bulletin.Config {
	cfg := base
	cfg.Rules.Keywords = make([]bulletin.KeywordGroup, len(base.Rules.Keywords))
	for i, g := range base.Rules.Keywords {
		cfg.Rules.Keywords[i] = bulletin.KeywordGroup{Key: g.Key, Words: slices.Clone(g.Words)}
	}
	if base.Rules.Aliases != nil {
		cfg.Rules.Aliases = make(map[string]bulletin.FieldKey, len(base.Rules.Aliases))
		for k, v := range base.Rules.Aliases {
			cfg.Rules.Aliases[k] = v
		}
	}
	cfg.Sites = slices.Clone(base.Sites)
	return cfg
}
