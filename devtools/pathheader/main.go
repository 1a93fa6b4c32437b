// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.astrophena.name/pathheader/cli"
	"go.astrophena.name/pathheader/devtools/internal"
	"go.astrophena.name/pathheader/header"
)

func main() { cli.Main(new(app)) }

type app struct {
	dry bool

	// root overrides the working directory in tests.
	root string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would have a path header added, without making changes.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	root := a.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		root = wd
	}

	cfg, err := internal.LoadConfig(root)
	if err != nil {
		return err
	}

	verb := "Updated"
	if a.dry {
		verb = "Would update"
	}

	env.Printf("Scanning root: %s\n", root)
	changed, err := header.Walk(ctx, root, header.Options{
		DryRun:   a.dry,
		Exclude:  cfg.Excluded,
		OnUpdate: func(rel string) { env.Printf("%s: %s\n", verb, rel) },
		OnError:  func(err error) { env.Logf("Error %v", err) },
	})
	if err != nil {
		return err
	}

	if a.dry {
		env.Printf("\nSummary: %d files would be updated.\n", len(changed))
	} else {
		env.Printf("\nSummary: %d files updated.\n", len(changed))
	}
	return nil
}
