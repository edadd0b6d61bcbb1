package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [seq...]",
	Short: "Classify sequence numbers, read from args or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDetector()
		if err != nil {
			return err
		}
		each := func(s string) error {
			s = strings.TrimSpace(s)
			if s == "" || strings.HasPrefix(s, "#") {
				return nil
			}
			seq, err := strconv.ParseUint(s, 0, 64)
			if err != nil {
				return errors.Wrapf(err, "parsing sequence number %q", s)
			}
			latest, err := d.CheckAndAccept(seq)
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", seq, verdict(latest, err))
			return nil
		}
		if len(args) > 0 {
			for _, arg := range args {
				if err := each(arg); err != nil {
					return err
				}
			}
			return nil
		}
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if err := each(sc.Text()); err != nil {
				return err
			}
		}
		return errors.Wrap(sc.Err(), "reading stdin")
	},
}
