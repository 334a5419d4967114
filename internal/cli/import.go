package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mechkit/mechkit/internal/mechfile"
	"github.com/mechkit/mechkit/internal/store"
)

// ImportResult holds the outcome of importing a mechanism.
type ImportResult struct {
	MechanismID string `json:"mechanism_id"`
	Reactions   int    `json:"reactions"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "import <mechanism.yaml> <db>",
		Short:         "Validate a mechanism and persist it to a SQLite store",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runImport(opts *RootOptions, path, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	mech, err := mechfile.Load(path)
	if err != nil {
		return reportLoadError(formatter, err)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		formatter.Error("STORE_OPEN", err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "failed to open store", Err: err}
	}
	defer db.Close()

	id, err := db.SaveMechanism(cmd.Context(), path, mech)
	if err != nil {
		formatter.Error("STORE_WRITE", err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "failed to save mechanism", Err: err}
	}

	result := ImportResult{MechanismID: id, Reactions: len(mech.Reactions)}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("imported %d reaction(s) as mechanism %s",
		result.Reactions, result.MechanismID))
}
