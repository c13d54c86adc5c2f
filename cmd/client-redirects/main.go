package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/nuke-build-contrib/docusaurus/cmd/client-redirects/commands"
	"github.com/nuke-build-contrib/docusaurus/internal/errors"
	"github.com/nuke-build-contrib/docusaurus/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("client-redirects"),
		kong.Description("Compute client-side redirect rules for a statically generated site"),
		kong.Vars{"version": version.Version},
		kong.UsageOnError(),
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()})
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
