package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fir-lang/tree-sitter-fir/hostlex"
	"github.com/fir-lang/tree-sitter-fir/scanner"
	"github.com/fir-lang/tree-sitter-fir/store"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save, load, list, and remove scanner-state snapshots",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save <session> <file>",
	Short: "Scan a file fully and persist its final scanner state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("wrong number of arguments")
		}
		session, err := uuid.FromString(args[0])
		if err != nil {
			return err
		}

		src, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		d := hostlex.NewDriver(src)
		d.All()

		var buf [scanner.MaxSerializedSize]byte
		n := d.State.Serialize(buf[:])

		s, err := OpenStore(context.Background(), logrus.StandardLogger())
		if err != nil {
			return err
		}
		return s.Save(context.Background(), store.Snapshot{
			Key:        store.Key{Session: session, Path: args[1]},
			ByteOffset: int64(len(src)),
			State:      buf[:n],
		})
	},
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load <session> <file>",
	Short: "Print the persisted scanner state for a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("wrong number of arguments")
		}
		session, err := uuid.FromString(args[0])
		if err != nil {
			return err
		}

		s, err := OpenStore(context.Background(), logrus.StandardLogger())
		if err != nil {
			return err
		}
		snap, ok, err := s.Load(context.Background(), store.Key{Session: session, Path: args[1]})
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("no snapshot found")
		}

		restored := scanner.New()
		restored.Deserialize(snap.State)
		if debug {
			fmt.Println(repr.String(snap))
		}
		fmt.Printf("byte_offset=%d depth=%d in_string=%t pending_end_blocks=%d\n",
			snap.ByteOffset, restored.Depth(), restored.InString(), restored.PendingEndBlocks())
		return nil
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list <session>",
	Short: "List the documents with a persisted snapshot for a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("wrong number of arguments")
		}
		session, err := uuid.FromString(args[0])
		if err != nil {
			return err
		}

		s, err := OpenStore(context.Background(), logrus.StandardLogger())
		if err != nil {
			return err
		}
		keys, err := s.List(context.Background(), session)
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Println(k.Path)
		}
		return nil
	},
}

var snapshotRmCmd = &cobra.Command{
	Use:   "rm <session> <file>",
	Short: "Delete a persisted snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("wrong number of arguments")
		}
		session, err := uuid.FromString(args[0])
		if err != nil {
			return err
		}

		s, err := OpenStore(context.Background(), logrus.StandardLogger())
		if err != nil {
			return err
		}
		return s.Delete(context.Background(), store.Key{Session: session, Path: args[1]})
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotLoadCmd, snapshotListCmd, snapshotRmCmd)
}
