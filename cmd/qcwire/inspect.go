package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qcwire/schema"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Summarize one payload file",
	Long: `Inspect decodes one payload file and prints what it holds: the
schema family and version, plus the fields that matter for its kind.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, err := decodeFile(args[0])
	if err != nil {
		return fmt.Errorf("inspect %s: %w", args[0], err)
	}
	out := cmd.OutOrStdout()

	switch p.Kind {
	case schema.KindMolecule:
		m := p.Molecule
		fmt.Fprintf(out, "schema:       %s v%d\n", m.SchemaName, m.SchemaVersion)
		fmt.Fprintf(out, "atoms:        %d (%s)\n", m.NAtoms(), strings.Join(m.Symbols, " "))
		fmt.Fprintf(out, "charge:       %g\n", m.MolecularCharge)
		fmt.Fprintf(out, "multiplicity: %d\n", m.MolecularMultiplicity)

	case schema.KindBasisSet:
		b := p.Basis
		fmt.Fprintf(out, "schema:  %s v%d\n", b.SchemaName, b.SchemaVersion)
		fmt.Fprintf(out, "name:    %s\n", b.Name)
		fmt.Fprintf(out, "centers: %d over %d atoms\n", len(b.CenterData), len(b.AtomMap))
		fmt.Fprintf(out, "nbf:     %d\n", b.NBF)

	case schema.KindResult:
		r := p.Result
		fmt.Fprintf(out, "schema:  %s v%d\n", r.SchemaName, r.SchemaVersion)
		fmt.Fprintf(out, "driver:  %s (%s)\n", r.Driver, r.Model.Method)
		fmt.Fprintf(out, "success: %t\n", r.Success)
		if wfn := r.Wavefunction; wfn != nil {
			fmt.Fprintf(out, "wavefunction: nbf %d, fields %s\n",
				wfn.Basis().NBF, strings.Join(wfn.Fields(), " "))
		}

	case schema.KindOptimization:
		o := p.Optimization
		fmt.Fprintf(out, "schema: %s v%d\n", o.SchemaName, o.SchemaVersion)
		fmt.Fprintf(out, "steps:  %d retained, %d energies\n", len(o.Trajectory), len(o.Energies))
		if e, ok := o.FinalEnergy(); ok {
			fmt.Fprintf(out, "final energy: %g\n", e)
		}
	}
	return nil
}
