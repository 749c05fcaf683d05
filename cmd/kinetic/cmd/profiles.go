package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-drift/kinetic/pkg/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the available physics profiles",
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	file, err := profile.LoadOptional(profilesDir)
	if err != nil {
		return err
	}

	names := file.Names()
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBEHAVIOR\tPARAMETERS")
	for _, name := range names {
		spec := file.Profiles[name]
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, spec.Behavior, describeSpec(spec))
	}
	return w.Flush()
}

func describeSpec(s profile.Spec) string {
	switch s.Behavior {
	case profile.KindMomentum:
		return fmt.Sprintf("friction=%g minimum_velocity=%g", s.Friction, s.MinimumVelocity)
	case profile.KindSnap:
		return fmt.Sprintf("page_size=%g", s.PageSize)
	case profile.KindSpring:
		return fmt.Sprintf("stiffness=%g damping=%g mass=%g target=%g",
			s.Stiffness, s.Damping, s.Mass, s.Target)
	default:
		return ""
	}
}
