package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Check   CheckCmd   `cmd:"" help:"Check JSON or YAML documents against a type descriptor."`
	Gen     GenCmd     `cmd:"" help:"Generate enumeration-like descriptor maps from a Go package."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type CheckCmd struct {
	Type  []string `help:"Expected type tag. May be repeated; any match passes." short:"t" required:""`
	Array bool     `help:"Require an array whose every element matches." short:"a"`
	YAML  bool     `help:"Parse inputs as YAML instead of JSON."`
	Quiet bool     `help:"Suppress per-document logging." short:"q"`
	Paths []string `arg:"" optional:"" help:"Input files. Reads stdin when omitted."`
}

func (c *CheckCmd) Run() error {
	return runCheck(c)
}

type GenCmd struct {
	Package string `arg:"" default:"." help:"Package pattern to scan (go command semantics)."`
	Out     string `help:"Output file. Writes stdout when omitted." short:"o"`
}

func (c *GenCmd) Run() error {
	return runGen(c)
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("typehelper"),
		kong.Description("Runtime type checks over JSON/YAML documents, and descriptor generation."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
