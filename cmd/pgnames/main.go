// Command pgnames is a CLI over the pgnames codec: look up sectors,
// systems, canonicalize names, and validate sector names.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/starfield-tools/pgnames/internal/pgapi"
	"github.com/starfield-tools/pgnames/pgnames"
)

var remoteAddr string

func main() {
	rootCmd := &cobra.Command{
		Use:   "pgnames",
		Short: "Procedural star-system name codec",
		Long:  "Resolve, validate, and canonicalize Elite-Dangerous-style procedural system and sector names.",
	}
	rootCmd.PersistentFlags().StringVarP(&remoteAddr, "remote", "r", "", "pgnamesd HTTP address (host:port); if unset, resolves locally")

	rootCmd.AddCommand(sectorCmd(), systemCmd(), canonicalCmd(), validateCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute command: %v", err)
	}
}

func sectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sector [name]",
		Short: "Resolve a sector by name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := args[0]
			if remoteAddr != "" {
				printRemoteSector(name)
				return
			}
			sec, err := pgnames.GetSector(name)
			if err != nil {
				log.Fatalf("sector lookup failed: %v", err)
			}
			fmt.Printf("%s (class %d) origin=(%.0f,%.0f,%.0f)\n", sec.Name, sec.Class, sec.Origin.X, sec.Origin.Y, sec.Origin.Z)
		},
	}
}

func systemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "system [name]",
		Short: "Resolve a system identifier to its position",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := args[0]
			if remoteAddr != "" {
				printRemoteSystem(name)
				return
			}
			sys, err := pgnames.GetSystem(name)
			if err != nil {
				log.Fatalf("system lookup failed: %v", err)
			}
			fmt.Printf("%s: (%.1f,%.1f,%.1f) +/-%.1f ly\n", sys.Name, sys.Position.X, sys.Position.Y, sys.Position.Z, sys.Uncertainty)
		},
	}
}

func canonicalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonical [name]",
		Short: "Print a sector name's canonical spelling",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			canon, ok := pgnames.GetCanonicalName(args[0])
			if !ok {
				log.Fatalf("%q is not a recognized sector name", args[0])
			}
			fmt.Println(canon)
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [name]",
		Short: "Check whether a sector name is valid",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !pgnames.IsValidSectorName(args[0]) {
				fmt.Printf("%q: invalid\n", args[0])
				return
			}
			class := pgnames.ClassifySectorName(args[0])
			fmt.Printf("%q: valid (%s)\n", args[0], classLabel(class))
		},
	}
}

func classLabel(c pgnames.SectorNameClass) string {
	switch c {
	case pgnames.SectorNameHA:
		return "hand-authored"
	case pgnames.SectorNameClass1:
		return "class 1"
	case pgnames.SectorNameClass2:
		return "class 2"
	default:
		return "unknown"
	}
}

func printRemoteSector(name string) {
	resp, err := http.Get("http://" + remoteAddr + "/api/sector/" + name)
	if err != nil {
		log.Fatalf("request to %s failed: %v", remoteAddr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("pgnamesd returned %s", resp.Status)
	}
	var sec pgapi.SectorResponse
	if err := json.NewDecoder(resp.Body).Decode(&sec); err != nil {
		log.Fatalf("failed to decode response: %v", err)
	}
	fmt.Printf("%s (%s) origin=(%.0f,%.0f,%.0f)\n", sec.Name, sec.Kind, sec.OriginX, sec.OriginY, sec.OriginZ)
}

func printRemoteSystem(name string) {
	resp, err := http.Get("http://" + remoteAddr + "/api/system/" + name)
	if err != nil {
		log.Fatalf("request to %s failed: %v", remoteAddr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("pgnamesd returned %s", resp.Status)
	}
	var sys pgapi.SystemResponse
	if err := json.NewDecoder(resp.Body).Decode(&sys); err != nil {
		log.Fatalf("failed to decode response: %v", err)
	}
	fmt.Printf("%s: (%.1f,%.1f,%.1f) +/-%.1f ly\n", sys.Name, sys.X, sys.Y, sys.Z, sys.Uncertainty)
}
