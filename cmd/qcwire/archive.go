package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qcwire/archive"
	"github.com/katalvlaran/qcwire/schema"
)

var (
	putID    string
	getOut   string
	listKind string
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Store and retrieve payloads in the record archive",
	Long: `The archive subcommands persist validated payloads in the SQLite
file named by archive_path (config file or QCWIRE_ARCHIVE_PATH). Records
are stored in canonical JSON form exactly as validate would accept them.`,
}

var archivePutCmd = &cobra.Command{
	Use:   "put FILE",
	Short: "Validate a payload file and store it, printing its id",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchivePut,
}

var archiveGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Print a stored record as canonical JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveGet,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored records, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runArchiveList,
}

var archiveRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a stored record",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveRm,
}

func init() {
	archivePutCmd.Flags().StringVar(&putID, "id", "", "Store under this id instead of a fresh UUID")
	archiveGetCmd.Flags().StringVar(&getOut, "out", "", "Write the record to this file instead of stdout")
	archiveListCmd.Flags().StringVar(&listKind, "kind", "", "Only list records of this schema_name")

	archiveCmd.AddCommand(archivePutCmd)
	archiveCmd.AddCommand(archiveGetCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveRmCmd)
}

func openArchive() (*archive.Store, error) {
	return archive.Open(cfg.ArchivePath)
}

func runArchivePut(cmd *cobra.Command, args []string) error {
	p, err := decodeFile(args[0])
	if err != nil {
		return fmt.Errorf("archive put %s: %w", args[0], err)
	}
	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Put(cmdContext(cmd), putID, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

func runArchiveGet(cmd *cobra.Command, args []string) error {
	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := store.Get(cmdContext(cmd), args[0])
	if err != nil {
		return err
	}
	data, err := schema.Encode(p)
	if err != nil {
		return err
	}
	if getOut != "" {
		return os.WriteFile(getOut, append(data, '\n'), 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmdContext(cmd), schema.Kind(listKind))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "%s\t%s\t%s\n", e.ID, e.Kind, e.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

func runArchiveRm(cmd *cobra.Command, args []string) error {
	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Delete(cmdContext(cmd), args[0])
}
