package main

import (
	"fmt"

	"github.com/perturbkit/vanvleck/catalog"
	"github.com/spf13/cobra"
)

// presetsCmd lists the built-in Hamiltonians.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in Hamiltonian presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return nil
	},
}
