package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fir-lang/tree-sitter-fir/hostlex"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Scan a .fir file and print its external token stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.StandardLogger()

		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("wrong number of arguments")
		}

		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		d := hostlex.NewDriver(src)
		logger.WithField("file", args[0]).Debug("scanning")

		for _, tok := range d.All() {
			if debug {
				fmt.Println(repr.String(tok))
				continue
			}
			fmt.Printf("%d:%d\t%s\t%s\n", tok.Line, tok.Col, tok.Symbol, repr.String(tok.Text))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
