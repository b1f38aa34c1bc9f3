package main

import (
	"fmt"

	"github.com/midbel/cli"
	"github.com/midbel/elfhead"
)

func runCheck(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	files := cmd.Flag.Args()
	if len(files) == 0 {
		return fmt.Errorf("%w: no object file given", elfhead.ErrUsage)
	}
	for _, f := range files {
		if err := elfhead.CheckObjectName(f); err != nil {
			return err
		}
	}
	var failed int
	for _, r := range elfhead.LoadAll(files) {
		if r.Err != nil {
			failed++
			printError(r.Err)
			continue
		}
		fmt.Printf("%s: %s %s, %s\n", r.File, r.Header.Class, r.Header.Type(), r.Header.Machine())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d objects could not be decoded", failed, len(files))
	}
	return nil
}
