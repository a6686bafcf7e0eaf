// Command fmtspec renders values with format specifications and explains
// how a specification parses.
//
// Usage:
//
//	fmtspec render '#010x' 42
//	fmtspec render '^10s' hi --kind string
//	fmtspec parse '*^+#012b' -o yaml
//	fmtspec explain '<10d'
//	fmtspec explain '#x' --markdown
//	fmtspec hex 42 --bits 16
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/fmtspec"
	"github.com/bjaus/fmtspec/internal/table"
)

const version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Config string `name:"config" short:"c" help:"Configuration file (.yaml, .yml or .toml)." type:"existingfile"`
	Level  string `name:"level" short:"l" help:"Verbosity threshold (critical, v, vv, vvv)."`
	Color  string `name:"color" help:"Colour mode (auto, always, never)."`

	Render  RenderCmd  `cmd:"" help:"Render a value with a format specification."`
	Parse   ParseCmd   `cmd:"" help:"Print the parsed form of a format specification."`
	Explain ExplainCmd `cmd:"" help:"Print a table describing a format specification."`
	Hex     HexCmd     `cmd:"" help:"Render an unsigned value with the width-matched hex format."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

// Globals is bound into every command's Run method.
type Globals struct {
	Out io.Writer
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fmtspec"),
		kong.Description("Render values with compact format specifications."),
		kong.UsageOnError(),
	)
	cfg, err := cli.config()
	ctx.FatalIfErrorf(err)
	fmtspec.Configure(cfg)
	ctx.FatalIfErrorf(ctx.Run(&Globals{Out: os.Stdout}))
}

// config merges the config file, the environment and the flags, in that
// order of increasing precedence.
func (c *CLI) config() (fmtspec.Config, error) {
	cfg := fmtspec.DefaultConfig()
	if c.Config != "" {
		loaded, err := fmtspec.LoadConfig(c.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg, err := fmtspec.ConfigFromEnv(cfg)
	if err != nil {
		return cfg, err
	}
	if c.Level != "" {
		if cfg.Level, err = fmtspec.ParseLevel(c.Level); err != nil {
			return cfg, err
		}
	}
	if c.Color != "" {
		if cfg.Color, err = fmtspec.ParseColorMode(c.Color); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// RenderCmd renders one value.
type RenderCmd struct {
	Spec  string `arg:"" help:"Format specification."`
	Value string `arg:"" optional:"" help:"Value to render."`
	Kind  string `name:"kind" short:"k" enum:"int,uint,bool,char,string,ptr,nil" default:"int" help:"How VALUE is interpreted (${enum})."`
	Width *int   `name:"width" short:"w" help:"Width override, clamped to [0, 999]."`
}

// Run renders the value to stdout followed by a newline.
func (r *RenderCmd) Run(g *Globals) error {
	v, err := parseValue(r.Kind, r.Value)
	if err != nil {
		return err
	}
	arg := fmtspec.F(r.Spec, v)
	if r.Width != nil {
		arg = fmtspec.FW(r.Spec, v, *r.Width)
	}
	fmtspec.To(g.Out).Putln(arg)
	return nil
}

func parseValue(kind, s string) (any, error) {
	switch kind {
	case "int":
		return strconv.ParseInt(s, 0, 64)
	case "uint":
		return strconv.ParseUint(s, 0, 64)
	case "bool":
		return strconv.ParseBool(s)
	case "char":
		if len(s) != 1 {
			return nil, fmt.Errorf("char value must be a single byte, got %q", s)
		}
		return fmtspec.Char(s[0]), nil
	case "string":
		return s, nil
	case "ptr":
		p, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, err
		}
		return fmtspec.Pointer(p), nil
	case "nil":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

// ParseCmd prints the parsed options.
type ParseCmd struct {
	Spec   fmtspec.Options `arg:"" help:"Format specification."`
	Output string          `name:"output" short:"o" enum:"text,yaml,json" default:"text" help:"Output format (${enum})."`
}

type optionsDoc struct {
	Canonical     string `yaml:"canonical" json:"canonical"`
	Fill          string `yaml:"fill" json:"fill"`
	Align         string `yaml:"align" json:"align"`
	Sign          string `yaml:"sign" json:"sign"`
	AlternateForm bool   `yaml:"alternate_form" json:"alternate_form"`
	SignAware     bool   `yaml:"sign_aware" json:"sign_aware"`
	Width         int    `yaml:"width" json:"width"`
	Type          string `yaml:"type" json:"type"`
	Upper         bool   `yaml:"upper" json:"upper"`
}

func describe(o fmtspec.Options) optionsDoc {
	return optionsDoc{
		Canonical:     o.String(),
		Fill:          string(o.Fill()),
		Align:         alignName(o.Align()),
		Sign:          signName(o.Sign()),
		AlternateForm: o.AlternateForm(),
		SignAware:     o.SignAware(),
		Width:         o.Width(),
		Type:          typeName(o.Type()),
		Upper:         o.Upper(),
	}
}

// Run prints the options as YAML, JSON or their canonical string.
func (p *ParseCmd) Run(g *Globals) error {
	switch p.Output {
	case "yaml":
		enc := yaml.NewEncoder(g.Out)
		if err := enc.Encode(describe(p.Spec)); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(describe(p.Spec))
	}
	fmtspec.To(g.Out).Putln(fmtspec.F("s", p.Spec.String()))
	return nil
}

// ExplainCmd prints a field table.
type ExplainCmd struct {
	Spec     fmtspec.Options `arg:"" help:"Format specification."`
	ASCII    bool            `name:"ascii" help:"Use ASCII borders." xor:"style"`
	Markdown bool            `name:"markdown" help:"Print a Markdown table." xor:"style"`
}

// Run prints the table.
func (x *ExplainCmd) Run(g *Globals) error {
	d := describe(x.Spec)
	t := table.Table{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"fill", strconv.Quote(d.Fill)},
			{"align", d.Align},
			{"sign", d.Sign},
			{"alternate form", strconv.FormatBool(d.AlternateForm)},
			{"sign aware", strconv.FormatBool(d.SignAware)},
			{"width", strconv.Itoa(d.Width)},
			{"type", d.Type},
		},
		Align: []fmtspec.Align{fmtspec.AlignLeft, fmtspec.AlignRight},
	}
	if x.Markdown {
		return table.WriteMarkdown(g.Out, t)
	}
	if x.ASCII {
		t.Border = table.BorderASCII
	}
	return table.Write(g.Out, t)
}

// HexCmd renders a width-matched hex value.
type HexCmd struct {
	Value uint64 `arg:"" help:"Unsigned value."`
	Bits  int    `name:"bits" short:"b" enum:"8,16,32,64" default:"64" help:"Integer width in bits (${enum})."`
}

// Run prints the value.
func (h *HexCmd) Run(g *Globals) error {
	var arg fmtspec.Arg
	switch h.Bits {
	case 8:
		arg = fmtspec.Hex(uint8(h.Value))
	case 16:
		arg = fmtspec.Hex(uint16(h.Value))
	case 32:
		arg = fmtspec.Hex(uint32(h.Value))
	default:
		arg = fmtspec.Hex(h.Value)
	}
	fmtspec.To(g.Out).Putln(arg)
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run prints the version.
func (VersionCmd) Run(g *Globals) error {
	fmtspec.To(g.Out).Putln("fmtspec ", version)
	return nil
}

func alignName(a fmtspec.Align) string {
	switch a {
	case fmtspec.AlignLeft:
		return "left"
	case fmtspec.AlignRight:
		return "right"
	case fmtspec.AlignCenter:
		return "center"
	default:
		return "default"
	}
}

func signName(s fmtspec.Sign) string {
	switch s {
	case fmtspec.SignPosNeg:
		return "positive and negative"
	case fmtspec.SignSpaceForPos:
		return "space for positive"
	default:
		return "negative only"
	}
}

func typeName(t fmtspec.Type) string {
	switch t {
	case fmtspec.TypeBinary:
		return "binary"
	case fmtspec.TypeChar:
		return "char"
	case fmtspec.TypeDecimal:
		return "decimal"
	case fmtspec.TypeString:
		return "string"
	case fmtspec.TypeHex:
		return "hex"
	default:
		return "default"
	}
}
